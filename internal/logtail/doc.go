// Package logtail reads the tail of cinematch's own log file for the in-app
// activity overlay.
//
// Read keeps a ring buffer of the last N lines, so memory stays bounded by the
// request rather than the file size. Each line is decoded as a zerolog JSON
// event (time, level, message, plus any extra fields such as op, status or
// request_id). Lines that are not JSON are returned verbatim in Message.
//
// A missing log file yields no entries and no error; cinematch may not have
// written anything yet.
package logtail
