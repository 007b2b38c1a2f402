package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/taigrr/colorhash"

	"github.com/dendrascience/dupehash/dupe"
)

var (
	headerStyle = text.Colors{text.FgYellow, text.Bold}
	warnStyle   = text.Colors{text.FgYellow, text.Bold}
	sepStyle    = text.Colors{text.FgGreen}
)

// digestPalette holds the colors a digest may be rendered in. The bucket is
// chosen by color-hashing the digest string, so a digest keeps its color
// across runs and output modes.
var digestPalette = []text.Color{
	text.FgRed,
	text.FgGreen,
	text.FgYellow,
	text.FgBlue,
	text.FgMagenta,
	text.FgCyan,
	text.FgHiRed,
	text.FgHiGreen,
	text.FgHiYellow,
	text.FgHiBlue,
	text.FgHiMagenta,
	text.FgHiCyan,
}

func digestColor(digest string) text.Color {
	return digestPalette[colorhash.HashString(digest)%len(digestPalette)]
}

func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warnStyle.Sprintf(format, args...))
}

// renderMatchText prints one digest:path line per retained pair.
func renderMatchText(w io.Writer, groups *dupe.Groups) error {
	for _, digest := range groups.Digests() {
		for _, path := range groups.Paths(digest) {
			line := digestColor(digest).Sprint(digest) + sepStyle.Sprint(":") + path
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderDuplicateText prints a count/digest header per group followed by the
// group's paths, one per line.
func renderDuplicateText(w io.Writer, groups *dupe.Groups, algorithm string) error {
	for _, digest := range groups.Digests() {
		paths := groups.Paths(digest)
		header := headerStyle.Sprintf("%d files with %s hash '%s':", len(paths), algorithm, digest)
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		for _, path := range paths {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderJSON prints the retained mapping as an object with 2-space
// indentation. Key order is the mapping's insertion order; Groups carries a
// custom marshaler for that.
func renderJSON(w io.Writer, groups *dupe.Groups) error {
	out, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// renderCSV prints a two-column table headed by the algorithm name, one row
// per (digest, path) pair.
func renderCSV(w io.Writer, groups *dupe.Groups, algorithm string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{algorithm, "path"}); err != nil {
		return err
	}
	for _, digest := range groups.Digests() {
		for _, path := range groups.Paths(digest) {
			if err := cw.Write([]string{digest, path}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
