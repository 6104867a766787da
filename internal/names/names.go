// Package names normalises the user-supplied names stored in the process
// table and the virtual file store.
package names

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Clamp returns name in NFC form, trimmed of surrounding whitespace and cut to
// at most maxBytes bytes without splitting a UTF-8 sequence.
func Clamp(name string, maxBytes int) string {
	s := norm.NFC.String(strings.TrimSpace(name))
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Equal reports whether a and b name the same entry once both are in NFC form.
func Equal(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}
