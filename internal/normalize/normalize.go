package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Name trims the name, collapses inner whitespace and converts it to NFC.
func Name(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}

// Key returns the case-folded form of Name, used to compare names
// regardless of case.
func Key(name string) string {
	return cases.Fold().String(Name(name))
}

// Names applies Name to every element.
func Names(names []string) []string {
	res := make([]string, len(names))
	for i := range names {
		res[i] = Name(names[i])
	}
	return res
}
