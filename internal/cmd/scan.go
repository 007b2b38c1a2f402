package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dendrascience/dupehash/dupe"
)

// scanOptions holds the already-parsed flag values for one scan run.
type scanOptions struct {
	Paths           []string
	Jobs            int
	Quiet           bool
	Format          string
	Algorithm       string
	MatchDigests    []string
	ShowProgress    bool
	Recursive       bool
	Glob            string
	GlobInsensitive bool
}

// runScan drives the full pipeline: validate configuration, collect
// candidates, hash them on the pool, aggregate, filter and render.
// It returns the process exit code; configuration and rendering failures
// come back as errors instead.
func runScan(stdout io.Writer, opts *scanOptions) (int, error) {
	// All configuration errors surface before any hashing work starts.
	for _, path := range opts.Paths {
		if _, err := os.Stat(path); err != nil {
			return 0, fmt.Errorf("path %q: %w", path, err)
		}
	}
	switch opts.Format {
	case "txt", "json", "csv":
	default:
		return 0, fmt.Errorf("invalid format %q: must be txt, json or csv", opts.Format)
	}
	var match dupe.Matcher
	if opts.Glob != "" {
		var err error
		match, err = dupe.NewMatcher(opts.Glob, opts.GlobInsensitive)
		if err != nil {
			return 0, err
		}
	}
	pool, err := dupe.NewPool(opts.Algorithm, opts.Jobs)
	if err != nil {
		return 0, err
	}

	// Submission happens up front: draining the lazy collector here fixes
	// the work set and gives the progress tracker a known total.
	var candidates []string
	for path := range dupe.Collect(opts.Paths, opts.Recursive, match) {
		candidates = append(candidates, path)
	}
	if len(candidates) == 0 {
		warnf("Warning: no files passed")
	}

	var prog *progressUI
	if opts.ShowProgress && !opts.Quiet && len(candidates) > 0 && isatty.IsTerminal(os.Stderr.Fd()) {
		prog = startProgress(len(candidates), opts.Algorithm)
	}
	groups, failed := dupe.Aggregate(pool.HashAll(candidates), func(dupe.Result) {
		prog.Increment()
	})
	prog.Stop()
	for _, res := range failed {
		log.Printf("Warning: hashing %s: %v", res.Path, res.Err)
	}

	matchMode := len(opts.MatchDigests) > 0
	var retained *dupe.Groups
	if matchMode {
		retained = groups.Matching(opts.MatchDigests)
	} else {
		retained = groups.Duplicates()
	}

	if opts.Quiet {
		if retained.Len() > 0 {
			return 0, nil
		}
		return 1, nil
	}

	switch opts.Format {
	case "txt":
		if matchMode {
			err = renderMatchText(stdout, retained)
		} else {
			err = renderDuplicateText(stdout, retained, opts.Algorithm)
		}
	case "json":
		err = renderJSON(stdout, retained)
	case "csv":
		err = renderCSV(stdout, retained, opts.Algorithm)
	}
	if err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}

	if matchMode && retained.Len() == 0 {
		return 1, nil
	}
	return 0, nil
}
