// Package cmd implements the command-line interface for the stubDB
// simulation store. It provides a hierarchical command structure for
// exploring the store's behavior from a shell.
//
// The package is organized into several subpackages:
//
//   - demo: Commands that run a simulated store session (run, seed, perf)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See stubdb -help for a list of all commands.
package cmd
