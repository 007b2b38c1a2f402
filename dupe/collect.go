package dupe

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Collect streams candidate file paths for hashing. Duplicate roots are
// collapsed to a single traversal; the first occurrence wins, so the
// submission order stays deterministic. A root naming a regular file is
// emitted if it passes match; a root naming a directory contributes its
// whole subtree when recursive is set and nothing otherwise. Only regular
// files are emitted.
//
// The returned channel is fed by a walker goroutine and closed once every
// root has been visited: the sequence is lazy, single-pass and finite.
// Paths that vanish or directories that cannot be read mid-walk are
// reported on the diagnostic stream and skipped.
func Collect(roots []string, recursive bool, match Matcher) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		seen := make(map[string]struct{}, len(roots))
		for _, root := range roots {
			if _, dup := seen[root]; dup {
				continue
			}
			seen[root] = struct{}{}
			collectRoot(out, root, recursive, match)
		}
	}()
	return out
}

func collectRoot(out chan<- string, root string, recursive bool, match Matcher) {
	info, err := os.Stat(root)
	switch {
	case err != nil:
		log.Printf("Warning: cannot stat %s: %v", root, err)
	case info.Mode().IsRegular():
		if match == nil || match(filepath.Base(root)) {
			out <- root
		}
	case info.IsDir() && recursive:
		walkRoot(out, root, match)
	}
}

func walkRoot(out chan<- string, root string, match Matcher) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if match == nil || match(d.Name()) {
			out <- path
		}
		return nil
	})
	if err != nil {
		log.Printf("Warning: error walking %s: %v", root, err)
	}
}
