// Package dupe implements the duplicate-file detection pipeline.
//
// The pipeline has four stages with a strict forward data flow:
// Collect streams candidate file paths, Pool hashes them on a bounded
// worker pool, Aggregate groups the streamed results by digest, and the
// Groups filters (Duplicates, Matching) select what gets reported.
//
// Key Components:
//
// Path Collection: Collect deduplicates the given roots and lazily emits
// every regular file that passes the optional Matcher, recursing into
// directories only when asked to.
//
// Hashing: Pool reads each file in fixed-size blocks through an
// incremental hash from the algorithm registry and streams Results in
// completion order. Per-file read failures travel on the same stream and
// never abort unrelated work.
//
// Grouping: Groups is an insertion-ordered digest-to-paths mapping.
// Aggregate is the single consumer of the result stream; once the stream
// closes it sorts every group's path list so output is deterministic no
// matter which worker finished first.
package dupe
