// Package bangla holds the Bengali locale helpers shared by aggregation and
// report generation: digit localization and collation-based ordering.
package bangla

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var banglaDigits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// Digits renders n using Bengali numerals.
func Digits(n int) string {
	return Localize(strconv.Itoa(n))
}

// Digits64 renders n using Bengali numerals.
func Digits64(n int64) string {
	return Localize(strconv.FormatInt(n, 10))
}

// Localize replaces every ASCII digit in s with its Bengali counterpart.
func Localize(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(banglaDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseInt parses a non-negative integer written in Bengali or ASCII digits.
func ParseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		var d int
		switch {
		case r >= '0' && r <= '9':
			d = int(r - '0')
		case r >= '০' && r <= '৯':
			d = int(r - '০')
		default:
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Bengali)
)

// Compare orders two strings under the Bengali collation.
func Compare(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// CompareSeatNo orders seat names naturally: the district part under the
// Bengali collation, then the trailing constituency number numerically, so
// "ঢাকা-২" sorts before "ঢাকা-১০".
func CompareSeatNo(a, b string) int {
	aName, aNum := splitSeatNo(a)
	bName, bNum := splitSeatNo(b)
	if c := Compare(aName, bName); c != 0 {
		return c
	}
	switch {
	case aNum < bNum:
		return -1
	case aNum > bNum:
		return 1
	}
	return 0
}

func splitSeatNo(seatNo string) (string, int) {
	i := strings.LastIndex(seatNo, "-")
	if i < 0 {
		return seatNo, 0
	}
	if n, ok := ParseInt(seatNo[i+1:]); ok {
		return seatNo[:i], n
	}
	return seatNo, 0
}
