package dupe

import (
	"fmt"
	"path"
	"strings"
)

// Matcher reports whether a file with the given base name should be
// considered for hashing. A nil Matcher accepts every name.
type Matcher func(name string) bool

// NewMatcher compiles a shell-style glob into a predicate over file base
// names. A pattern starting with '!' is negated: the predicate accepts a
// name exactly when the unprefixed pattern does not match it. With
// caseInsensitive set, pattern and name are both lowercased before
// comparison. Malformed patterns fail with ErrBadGlob.
func NewMatcher(pattern string, caseInsensitive bool) (Matcher, error) {
	negate := strings.HasPrefix(pattern, "!")
	if negate {
		pattern = pattern[1:]
	}
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadGlob, pattern)
	}

	return func(name string) bool {
		if caseInsensitive {
			name = strings.ToLower(name)
		}
		// Pattern validity was checked above; Match cannot fail here.
		ok, _ := path.Match(pattern, name)
		return ok != negate
	}, nil
}
