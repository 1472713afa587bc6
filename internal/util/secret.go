package util

import "strings"

// MaskSecret keeps the first and last four characters of a credential.
// Short values are fully masked.
func MaskSecret(s string) string {
	r := []rune(s)
	if len(r) <= 12 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:4]) + "…" + string(r[len(r)-4:])
}
