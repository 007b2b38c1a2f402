// Package cmd provides the command-line interface implementation for dupehash.
//
// This package contains the command implementations for the dupehash CLI tool.
// It uses the Cobra library for command structure and Fang for beautiful styling.
//
// The package is organized into the following commands:
//   - root: the duplicate scan itself (collect, hash, group, report)
//   - algorithms: lists the supported digest algorithms
//   - seed: generates duplicate-heavy test file trees
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The scan pipeline itself lives in
// the dupe package; this package owns flag parsing, validation, terminal
// styling, progress rendering and exit codes.
package cmd
