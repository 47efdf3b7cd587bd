// Package ui provides the cinematch terminal interface.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all state and every change
// happens in Update on the program goroutine; backend calls run as tea.Cmd
// functions and report back as messages.
//
// # Package Structure
//
//   - app.go: Model, Update, key routing, layout and Run
//   - controller.go: movie loading and the recommendation request lifecycle
//   - selector.go: the filterable movie selection control
//   - form.go: the movie, count and trigger controls
//   - results.go: heading, count label and the card grid
//   - toast.go: the single transient notification slot
//   - header.go: status bar, health indicator and key hints
//   - help.go, activity.go: the help and activity log overlays
//   - theme.go, style_helpers.go: colors and lipgloss styles
//
// # Request Lifecycle
//
//  1. Init issues the movie list fetch exactly once
//  2. The user picks a movie, optionally edits the count, and triggers
//  3. The form is validated; a rejected form shows a notification and sends
//     nothing
//  4. The trigger is disabled, the loading block replaces the results and
//     the request runs
//  5. The response (or failure) renders into the results area and the
//     trigger is enabled again
//
// While the trigger is disabled further triggers are ignored, so at most one
// request is ever in flight.
//
// # Key Bindings
//
//   - Tab / Shift+Tab: Move between movie, count and trigger
//   - j/k or arrows: Change the selected movie
//   - /: Filter the movie list
//   - Enter: Count field from the list, request from count or trigger
//   - Ctrl+R: Request from anywhere
//   - PgUp/PgDn, Ctrl+U/Ctrl+D: Scroll results
//   - L: Activity log
//   - T: Cycle theme
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
