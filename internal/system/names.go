package system

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/litescript/ls-orrery/internal/rng"
)

var starSyllables = []string{
	"al", "bar", "cen", "dor", "el", "fom", "gan", "hy",
	"ix", "ka", "lor", "mir", "nov", "or", "pol", "rai",
	"sol", "tau", "ul", "vek", "xan", "yor", "zed", "ath",
}

var planetSyllables = []string{
	"ar", "be", "cor", "du", "en", "fa", "gor", "hal",
	"io", "jun", "kar", "lun", "mo", "nar", "os", "pra",
	"qui", "ros", "sa", "teth", "ur", "vos", "wy", "zan",
}

// makeName draws a syllable count in [2,3], then one draw per syllable.
func makeName(s *rng.Stream, pool []string) string {
	n := s.IntRange(2, 3)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(pool[s.IntRange(0, len(pool)-1)])
	}
	return cases.Title(language.English).String(b.String())
}

// designation appends a roman numeral for the orbital index.
func designation(root string, index int) string {
	return root + " " + roman(index+1)
}

func roman(n int) string {
	numerals := []struct {
		v int
		s string
	}{
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var b strings.Builder
	for _, r := range numerals {
		for n >= r.v {
			b.WriteString(r.s)
			n -= r.v
		}
	}
	return b.String()
}
