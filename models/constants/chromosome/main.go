package chromosome

import (
	"strconv"
	"strings"
)

/*
	Helpers for chromosome naming; display ordering and the
	primary-vs-scaffold distinction both live here.
*/

// IsAlternateScaffold reports whether a sequence name refers to an
// unplaced or alternate scaffold (chr1_random, chrUn_gl000220, ...)
// rather than a primary chromosome.
func IsAlternateScaffold(name string) bool {
	return strings.Contains(name, "_") ||
		strings.Contains(name, "Un") ||
		strings.Contains(name, "random")
}

// CompareNames orders chromosome names naturally:
// chr1, chr2, ... chr22, chrX, chrY, chrM.
//
// Numbered chromosomes compare numerically (so chr2 < chr10) and always
// come before lettered ones; lettered ones compare lexicographically.
func CompareNames(a string, b string) bool {
	aRest := strings.TrimPrefix(a, "chr")
	bRest := strings.TrimPrefix(b, "chr")

	aNum, aNumErr := strconv.Atoi(aRest)
	bNum, bNumErr := strconv.Atoi(bRest)

	if aNumErr == nil && bNumErr == nil {
		return aNum < bNum
	}
	if aNumErr == nil {
		return true
	}
	if bNumErr == nil {
		return false
	}

	return aRest < bRest
}
