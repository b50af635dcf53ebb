package utils

import "crypto/subtle"

// SecretMatches reports whether provided equals expected without leaking
// timing information. An empty expected secret never matches.
func SecretMatches(expected, provided string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}

// Truthy reports whether a raw form value counts as set. Any non-empty
// string is true, including "false" and "0".
func Truthy(raw string) bool {
	return raw != ""
}
