// Package main hosts the moyn CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into calls against
// the blogging service: logging in, publishing markdown files, listing and
// deleting posts, and managing spaces. It centralizes config loading, logger
// setup and API client construction in commandContext so each subcommand
// only deals with its own flags and output.
//
// Keep this package lean: parsing lives in internal/document, HTTP in
// internal/api, and persistence in internal/config. Every failure is printed
// as "Error: <message>" on stderr and exits with status 1.
package main
