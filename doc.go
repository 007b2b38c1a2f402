// Package main provides the dupehash command-line interface.
//
// dupehash is a concurrent duplicate-file detector. It walks the given
// paths, hashes every candidate file on a parallel worker pool and reports
// groups of files that share a content digest, as text, JSON or CSV.
//
// The main binary runs the scan directly and supports two utility
// subcommands:
//   - algorithms: List the supported digest algorithms
//   - seed: Generate duplicate-heavy test file trees
package main
