package palette

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-formbuilder/pkg/layout"
)

// fallbackName is used when a label has no letters or digits.
const fallbackName = "field"

// Camelize turns a human label into a lower camel case identifier:
// "Single-lined Text" becomes "singleLinedText". Anything that is not a
// letter or digit separates words and is dropped.
func Camelize(label string) string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, word := range words {
		runes := []rune(word)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	return b.String()
}

// UniqueName returns base, or base followed by the smallest counter from 2
// upwards, so the result is not used by any field of g.
func UniqueName(g layout.Grid, base string) string {
	if base == "" {
		base = fallbackName
	}
	taken := make(map[string]struct{}, g.TotalFields())
	for _, name := range g.Names() {
		taken[name] = struct{}{}
	}
	if _, used := taken[base]; !used {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + strconv.Itoa(n)
		if _, used := taken[candidate]; !used {
			return candidate
		}
	}
}

// NameFor derives a unique internal name for a field labelled label.
func NameFor(g layout.Grid, label string) string {
	return UniqueName(g, Camelize(label))
}
