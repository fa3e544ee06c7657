// Package config loads, normalizes, validates, and saves moyn configuration.
//
// The config file is TOML and carries the Session (API token and base URL)
// written by `moyn login`, HTTP transport settings, and logging options. A
// missing file is the "not logged in" state rather than an error; malformed
// files and invalid values surface as services.ErrConfiguration.
//
// Load the Config once per invocation and pass it explicitly to the code that
// needs it. Nothing in this package keeps process-wide state.
package config
