// Package version exposes build metadata injected via ldflags.
//
// Unlike most CLIs there is no `version` subcommand here: every argument
// of the launcher is forwarded verbatim to the browser, so no word may be
// reserved. Build info is logged at debug level on startup instead.
package version
