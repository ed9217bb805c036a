package utils

import (
	"strconv"
	"strings"
)

// CompareVersions compares two dotted version strings, ignoring a
// leading "v". Returns 1 when a is newer, -1 when b is newer, 0 when
// they are equal. Missing segments count as zero, non-numeric
// segments as zero too.
func CompareVersions(a, b string) int {
	pa := strings.Split(strings.TrimPrefix(a, "v"), ".")
	pb := strings.Split(strings.TrimPrefix(b, "v"), ".")

	n := len(pa)
	if len(pb) > n {
		n = len(pb)
	}
	for i := 0; i < n; i++ {
		var na, nb int
		if i < len(pa) {
			na, _ = strconv.Atoi(pa[i])
		}
		if i < len(pb) {
			nb, _ = strconv.Atoi(pb[i])
		}
		if na > nb {
			return 1
		}
		if na < nb {
			return -1
		}
	}
	return 0
}
