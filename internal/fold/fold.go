// Package fold centralizes case-insensitive string handling so the filter,
// sort and matcher layers all agree on the same semantics.
package fold

import "strings"

// Lower returns the lower-cased form used for all comparisons.
func Lower(s string) string { return strings.ToLower(s) }

// Equal reports whether a and b are equal ignoring case.
func Equal(a, b string) bool { return Lower(a) == Lower(b) }

// Contains reports whether sub occurs in s ignoring case.
func Contains(s, sub string) bool { return strings.Contains(Lower(s), Lower(sub)) }

// Compare orders a and b ignoring case.
func Compare(a, b string) int { return strings.Compare(Lower(a), Lower(b)) }
