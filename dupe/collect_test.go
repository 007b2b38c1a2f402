package dupe

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func drain(ch <-chan string) []string {
	var out []string
	for path := range ch {
		out = append(out, path)
	}
	slices.Sort(out)
	return out
}

func TestCollectFileRoots(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	b := filepath.Join(tmpDir, "b.go")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	got := drain(Collect([]string{a, b}, false, nil))
	want := []string{a, b}
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("Collect file roots = %v, want %v", got, want)
	}
}

func TestCollectDeduplicatesRoots(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	writeFile(t, a, "a")

	got := drain(Collect([]string{a, a, a}, false, nil))
	if len(got) != 1 {
		t.Errorf("duplicate roots yielded %d candidates, want 1", len(got))
	}
}

func TestCollectDirectoryNonRecursive(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	writeFile(t, filepath.Join(tmpDir, "b.txt"), "b")
	writeFile(t, filepath.Join(tmpDir, "c.txt"), "c")

	// A directory root without recursion contributes nothing, non-fatally.
	got := drain(Collect([]string{tmpDir}, false, nil))
	if len(got) != 0 {
		t.Errorf("non-recursive dir root yielded %v, want none", got)
	}
}

func TestCollectDirectoryRecursive(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	deep := filepath.Join(tmpDir, "sub", "deeper", "d.txt")
	writeFile(t, a, "a")
	writeFile(t, deep, "d")

	got := drain(Collect([]string{tmpDir}, true, nil))
	want := []string{a, deep}
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("recursive collect = %v, want %v", got, want)
	}
}

func TestCollectGlobFilter(t *testing.T) {
	tmpDir := t.TempDir()
	keep := filepath.Join(tmpDir, "sub", "notes.txt")
	skip := filepath.Join(tmpDir, "sub", "main.go")
	writeFile(t, keep, "x")
	writeFile(t, skip, "y")

	match, err := NewMatcher("*.txt", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	got := drain(Collect([]string{tmpDir}, true, match))
	if !slices.Equal(got, []string{keep}) {
		t.Errorf("glob collect = %v, want [%s]", got, keep)
	}

	negated, err := NewMatcher("!*.txt", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	got = drain(Collect([]string{tmpDir}, true, negated))
	if !slices.Equal(got, []string{skip}) {
		t.Errorf("negated glob collect = %v, want [%s]", got, skip)
	}
}

func TestCollectGlobAppliesToFileRoots(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	writeFile(t, a, "a")

	match, err := NewMatcher("*.go", false)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	if got := drain(Collect([]string{a}, false, match)); len(got) != 0 {
		t.Errorf("file root surviving non-matching glob: %v", got)
	}
}

func TestCollectSkipsIrregularEntries(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.txt")
	writeFile(t, target, "x")
	link := filepath.Join(tmpDir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got := drain(Collect([]string{tmpDir}, true, nil))
	if !slices.Equal(got, []string{target}) {
		t.Errorf("walk yielded %v, want only %s", got, target)
	}

	// A symlink given directly as a root resolves through Stat.
	got = drain(Collect([]string{link}, false, nil))
	if !slices.Equal(got, []string{link}) {
		t.Errorf("symlink root yielded %v, want [%s]", got, link)
	}
}
