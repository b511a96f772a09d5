package sorter

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// NaturalCompare compares a and b the way people order file names.
// Both strings are split into alternating runs of ASCII digits and
// non-digits. Digit runs compare by numeric value (any length, leading
// zeros ignored); other runs compare case-insensitively after Unicode case
// folding. A digit run sorts before a non-digit run. It returns -1, 0 or +1.
func NaturalCompare(a, b string) int {
	var f folder
	for a != "" && b != "" {
		ra, restA := nextRun(a)
		rb, restB := nextRun(b)
		da, db := isDigit(ra[0]), isDigit(rb[0])
		var c int
		switch {
		case da && db:
			c = compareDigits(ra, rb)
		case da:
			c = -1
		case db:
			c = 1
		default:
			c = f.compare(ra, rb)
		}
		if c != 0 {
			return c
		}
		a, b = restA, restB
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	}
	return 1
}

// NaturalLess reports whether a sorts before b in natural order.
func NaturalLess(a, b string) bool {
	return NaturalCompare(a, b) < 0
}

// NaturalStrings sorts x in natural order. Equal strings keep their order.
func NaturalStrings(x []string) {
	sort.SliceStable(x, func(i, j int) bool { return NaturalLess(x[i], x[j]) })
}

// nextRun splits s into its leading run of digits or non-digits and the rest.
func nextRun(s string) (run, rest string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// folder compares non-digit runs case-insensitively. ASCII runs are folded
// byte by byte; the Unicode caser is built only when a run needs it.
type folder struct {
	caser cases.Caser
	ready bool
}

func (f *folder) compare(a, b string) int {
	if isASCII(a) && isASCII(b) {
		return compareASCIIFold(a, b)
	}
	if !f.ready {
		f.caser = cases.Fold()
		f.ready = true
	}
	return strings.Compare(f.caser.String(a), f.caser.String(b))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func compareASCIIFold(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// compareDigits compares two runs of ASCII digits by numeric value.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
