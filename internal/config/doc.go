// Package config loads kiosk settings.
//
// Values are layered, lowest precedence first:
//
//  1. Built-in defaults
//  2. ~/.config/kiosk/config.toml, or the file passed with -config
//  3. KIOSK_* environment variables (dashes become underscores)
//
// A missing config file falls back to defaults; a file that exists but does
// not parse is an error.
//
// # Keys
//
//	base-url         catalog root (default https://fakestoreapi.com)
//	log-file         where log output goes; "-" or empty disables it
//	request-timeout  whole-request timeout such as "10s"; 0 leaves it to the transport
//	user-agent       overrides the kiosk/<version> User-Agent
//	start-path       initial route, e.g. "/product/3"
//
// Example:
//
//	base-url = "http://127.0.0.1:8089"
//	request-timeout = "5s"
//	log-file = "~/kiosk.log"
package config
