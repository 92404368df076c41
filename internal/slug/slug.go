// Package slug derives URL-safe path segments from titles and tag names.
package slug

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Make turns free text into a slug. Characters outside [A-Za-z0-9_-]
// and whitespace are dropped, trailing whitespace is trimmed, and each
// remaining whitespace run collapses to a single "-". The function is
// idempotent. Input with no usable characters yields "" and the caller
// picks a fallback.
func Make(s string) string {
	var kept strings.Builder
	kept.Grow(len(s))
	for _, r := range s {
		if isSlugRune(r) || isSpace(r) {
			kept.WriteRune(r)
		}
	}
	t := strings.TrimRight(kept.String(), " \t\n\v\f\r")
	if t == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(t))
	pendingDash := false
	for _, r := range t {
		if isSpace(r) {
			pendingDash = true
			continue
		}
		if pendingDash {
			out.WriteByte('-')
			pendingDash = false
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Strip reduces s to the [A-Za-z0-9_-] alphabet, removing everything
// else outright. Used for author-supplied url fields, which are single
// path segments already.
func Strip(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		if isSlugRune(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// Fallback returns a deterministic slug for text whose stripped form is
// empty, e.g. a tag written entirely in non-ASCII script. Equal input
// always maps to the same slug.
func Fallback(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:6])
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
