package dupe

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Groups maps digests to the paths sharing them. Digest keys keep their
// insertion order, which for an aggregated run is the order the first file
// of each group finished hashing. A group never has an empty path list.
type Groups struct {
	order []string
	paths map[string][]string
}

// NewGroups returns an empty mapping.
func NewGroups() *Groups {
	return &Groups{paths: make(map[string][]string)}
}

// Add appends path to the group for digest, creating the group on first
// sight of the digest.
func (g *Groups) Add(digest, path string) {
	if _, ok := g.paths[digest]; !ok {
		g.order = append(g.order, digest)
	}
	g.paths[digest] = append(g.paths[digest], path)
}

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.order) }

// Digests returns the digest keys in insertion order.
func (g *Groups) Digests() []string { return slices.Clone(g.order) }

// Paths returns the path list for digest, nil if the group does not exist.
func (g *Groups) Paths(digest string) []string { return g.paths[digest] }

// Sort orders every group's path list lexicographically. Aggregation is
// completion-order-dependent, so this pass is what makes output
// reproducible across runs.
func (g *Groups) Sort() {
	for digest := range g.paths {
		slices.Sort(g.paths[digest])
	}
}

// Duplicates returns the groups holding more than one path, preserving key
// order. Path lists are shared with the receiver, not copied.
func (g *Groups) Duplicates() *Groups {
	out := NewGroups()
	for _, digest := range g.order {
		if paths := g.paths[digest]; len(paths) > 1 {
			out.order = append(out.order, digest)
			out.paths[digest] = paths
		}
	}
	return out
}

// Matching returns the groups whose digest is in the given set, regardless
// of group size, preserving key order.
func (g *Groups) Matching(digests []string) *Groups {
	want := make(map[string]struct{}, len(digests))
	for _, digest := range digests {
		want[digest] = struct{}{}
	}
	out := NewGroups()
	for _, digest := range g.order {
		if _, ok := want[digest]; ok {
			out.order = append(out.order, digest)
			out.paths[digest] = g.paths[digest]
		}
	}
	return out
}

// MarshalJSON serializes the mapping as an object with keys in insertion
// order, which encoding/json's map marshaling would not preserve.
func (g *Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, digest := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(digest)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(g.paths[digest])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Aggregate is the single consumer of a result stream. It drains results in
// completion order, groups successful digests, and collects failed reads
// separately so the caller can report them; a failure never aborts the rest
// of the stream. Once the stream closes, every group is sorted. The observe
// callback, if non-nil, sees each result as it completes and is the hook
// for progress reporting.
func Aggregate(results <-chan Result, observe func(Result)) (*Groups, []Result) {
	groups := NewGroups()
	var failed []Result
	for res := range results {
		if observe != nil {
			observe(res)
		}
		if res.Err != nil {
			failed = append(failed, res)
			continue
		}
		groups.Add(res.Digest, res.Path)
	}
	groups.Sort()
	return groups, failed
}
