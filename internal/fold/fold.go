// Package fold provides case-insensitive lookup keys.
package fold

import "golang.org/x/text/cases"

// Key returns the Unicode case-folded form of s, suitable as a map key for
// case-insensitive lookups.
//
// A cases.Caser is stateful and must not be shared between goroutines, so a
// fresh one is created for every call.
func Key(s string) string {
	return cases.Fold().String(s)
}

// Equal reports whether a and b are equal under Unicode case folding.
func Equal(a, b string) bool {
	if a == b {
		return true
	}

	return Key(a) == Key(b)
}
