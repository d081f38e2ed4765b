// Package config loads, normalizes, and validates the TOML configuration
// for gpalbums.
//
// Configuration is optional: a missing file yields working defaults. Path
// fields are expanded (~ and relative forms) during load so the rest of the
// codebase only ever sees absolute paths.
package config
