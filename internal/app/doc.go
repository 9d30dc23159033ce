// Package app wires application dependencies for the CLI.
//
// It resolves the effective configuration (flags over config.yaml over
// defaults) and builds the concrete stores and services from Config,
// exposing them via the Wire struct for commands to use.
package app
