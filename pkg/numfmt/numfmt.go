// Package numfmt renders integer amounts for display. Values stay plain
// integers everywhere else.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount groups thousands with commas: 10,000.
func Amount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Rupiah groups thousands with periods: 12.500.
func Rupiah(n int64) string {
	return message.NewPrinter(language.Indonesian).Sprintf("%d", n)
}
