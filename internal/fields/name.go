// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import "strings"

// FormatName reorders a "First [Middle...] Last" name as "Last, First Middle".
// A single token is returned unchanged. It reports false for a blank name.
//
// Two-token names are always read as "First Last"; suffixes such as "Jr."
// and multi-word surnames are not recognized.
func FormatName(raw string) (string, bool) {
	parts := strings.Fields(raw)
	switch len(parts) {
	case 0:
		return "", false
	case 1:
		return parts[0], true
	case 2:
		return parts[1] + ", " + parts[0], true
	default:
		first, last := parts[0], parts[len(parts)-1]
		middle := strings.Join(parts[1:len(parts)-1], " ")
		return last + ", " + first + " " + middle, true
	}
}
