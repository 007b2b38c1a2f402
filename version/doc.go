// Package version provides version information and build metadata for dupehash.
//
// Version, Commit and Date can be injected at build time via -ldflags; when
// they are left at their defaults the package falls back to Go's runtime
// build info (vcs.revision, vcs.time), so version reporting works in
// development, CI and release builds alike.
package version
