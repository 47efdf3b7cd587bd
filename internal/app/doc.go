// Package app is the composition root for cinematch.
//
// Run loads configuration, opens the log file, reads user preferences,
// builds the recommendation client, starts the health poller and then hands
// control to the TUI until the user quits or the context is cancelled.
//
// # Polling Behavior
//
// The poller pings the backend's root route once at startup and then
// every poll_interval (default 15s). After a failure the wait doubles per
// consecutive failure, capped at two minutes, and resets on the first
// success. Each ping has a three second timeout. Results go into a shared
// state.Store which the UI samples once a second.
//
// A poll interval of zero disables health checks entirely.
//
// # Error Handling
//
// Only configuration and client construction errors are fatal. A log file
// that cannot be opened, unreadable preferences and an unreachable backend
// are all tolerated: the UI starts anyway and reports backend trouble through
// its health indicator and notifications.
package app
