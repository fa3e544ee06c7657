// Package services defines shared utilities consumed by the API client, the
// config store, and the markdown parser.
//
// Key responsibilities:
//   - Context helpers that stamp the running command and correlation
//     identifiers for logging and request headers.
//   - Structured error markers plus the Wrap helper so every failure can be
//     classified (parse, configuration, transport, unauthorized, not found,
//     validation, server) with errors.Is.
//
// Use these helpers when adding new commands so error reporting stays uniform
// across the CLI.
package services
