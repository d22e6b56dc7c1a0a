package bangla

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "০", Digits(0))
	assert.Equal(t, "১৫", Digits(15))
	assert.Equal(t, "৩০০", Digits(300))
	assert.Equal(t, "১২৩৪৫৬৭৮৯০", Digits64(1234567890))
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "ঢাকা-১ (১৭৪)", Localize("ঢাকা-1 (174)"))
	assert.Equal(t, "no digits", Localize("no digits"))
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"১", 1, true},
		{"২০", 20, true},
		{"300", 300, true},
		{"১0", 10, true},
		{"", 0, false},
		{"ঢাকা", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseInt(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCompareSeatNo_NaturalOrder(t *testing.T) {
	seats := []string{"ঢাকা-১০", "ঢাকা-২", "ঢাকা-১", "কুমিল্লা-৩"}
	sort.Slice(seats, func(i, j int) bool {
		return CompareSeatNo(seats[i], seats[j]) < 0
	})
	assert.Equal(t, []string{"কুমিল্লা-৩", "ঢাকা-১", "ঢাকা-২", "ঢাকা-১০"}, seats)
}

func TestCompareSeatNo_SameSeat(t *testing.T) {
	assert.Zero(t, CompareSeatNo("সিলেট-১", "সিলেট-১"))
}
