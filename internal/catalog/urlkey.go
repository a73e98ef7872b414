package catalog

import (
	"net/url"
	"strings"
)

// Historically the same image URL was written under several percent-encoding
// variants depending on which admin path touched it. Canonical gives the one
// form every write goes under; Variants gives the probe order reads use so
// entries written under any older form are still found.

// maxDecodePasses bounds repeated decoding of double (or worse) encoded input.
const maxDecodePasses = 4

// Canonical returns the single normalized identity for an image URL: query
// string and fragment dropped, percent-encoding decoded until stable.
// Undecodable input is returned as-is (minus query/fragment).
func Canonical(raw string) string {
	s := stripQuery(raw)
	for i := 0; i < maxDecodePasses; i++ {
		decoded, err := url.PathUnescape(s)
		if err != nil || decoded == s {
			break
		}
		s = decoded
	}
	return s
}

// Variants returns every representation of raw worth probing, in fixed
// priority order: raw, decoded-once, encoded-once, space-as-%2520, and
// decode-then-encode. Malformed variants are skipped, duplicates collapsed.
func Variants(raw string) []string {
	s := stripQuery(raw)
	candidates := []string{s}

	decoded, decodeErr := url.PathUnescape(s)
	if decodeErr == nil {
		candidates = append(candidates, decoded)
	}
	candidates = append(candidates, encodeOnce(s))
	candidates = append(candidates, strings.ReplaceAll(s, "%20", "%2520"))
	if decodeErr == nil {
		candidates = append(candidates, encodeOnce(decoded))
	}

	seen := make(map[string]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// SameIdentity reports whether two raw URL strings name the same image.
func SameIdentity(a, b string) bool {
	return Canonical(a) == Canonical(b)
}

// WithRev appends a cache-busting revision query parameter. Viewers' caches
// key on the full URL, so a fresh rev forces a refetch after an
// overwrite-in-place.
func WithRev(rawURL, rev string) string {
	if rev == "" {
		return rawURL
	}
	joiner := "?"
	if strings.Contains(rawURL, "?") {
		joiner = "&"
	}
	return rawURL + joiner + "rev=" + url.QueryEscape(rev)
}

func stripQuery(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// encodeOnce percent-encodes raw the way browsers' encodeURI does, except
// that "%" itself is also encoded. Applying it to an already-encoded string
// therefore yields the double-encoded variant seen in old hash keys.
func encodeOnce(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if encodeURISafe(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func encodeURISafe(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case ';', ',', '/', '?', ':', '@', '&', '=', '+', '$',
		'-', '_', '.', '!', '~', '*', '\'', '(', ')', '#':
		return true
	}
	return false
}
