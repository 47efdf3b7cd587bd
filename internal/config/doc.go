// Package config loads cinematch's startup configuration.
//
// # Resolution Order
//
// Values are layered with koanf, later layers winning:
//
//  1. Built-in defaults
//  2. TOML file: the -config path, or ~/.config/cinematch/config.toml
//  3. Environment variables prefixed with CINEMATCH_
//
// A missing file is fine; defaults and environment still apply. A file that
// exists but does not parse is an error.
//
// # Fields
//
//	api_url = "http://localhost:5000"                       # CINEMATCH_API_URL
//	log_file = "~/.local/state/cinematch/cinematch.log"     # CINEMATCH_LOG_FILE
//	log_level = "info"                                      # CINEMATCH_LOG_LEVEL
//	poll_interval = "15s"                                   # CINEMATCH_POLL_INTERVAL
//	request_timeout = "0s"                                  # CINEMATCH_REQUEST_TIMEOUT
//
// Blank strings fall back to their defaults. log_file supports "~".
// poll_interval of zero disables the backend health poller. request_timeout
// of zero means requests wait until the backend answers or cinematch exits.
package config
