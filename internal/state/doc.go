// Package state shares backend health between the background poller and the
// UI.
//
// The poller is the only writer; the UI reads a copy on every tick:
//
//	poller: Ping() -> store.Update(latency, err)
//	ui:     store.Snapshot() -> header indicator
//
// A zero Store is ready to use. Snapshot returns a value, and the error it
// carries is a fresh wrapper, so callers never share state with the poller.
//
// A failed check keeps the last good latency and LastOK time. IsOffline flips
// after two consecutive failures so a single dropped ping does not flash the
// header.
package state
