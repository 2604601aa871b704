// Package richtext holds styled runs and the flat text they form.
package richtext

import (
	"strings"

	"github.com/riverfjs/richtextify-go/internal/attr"
)

// Characters used for invisible runs.
const (
	OpeningChar = "\u200b" // zero width space
	ClosingChar = "\n"
	ObjectChar  = "\ufffc" // object replacement, stands in for attachments
)

// Run is a piece of text with one attribute set.
type Run struct {
	Text  string
	Attrs attr.Set
}

// IsMarker reports whether r is a structural marker run.
func (r Run) IsMarker() bool {
	return r.Attrs.Has(attr.KeyMarker)
}

// Text is an ordered run sequence.
type Text []Run

// String concatenates all runs, markers included.
func (t Text) String() string {
	var b strings.Builder
	for _, r := range t {
		b.WriteString(r.Text)
	}
	return b.String()
}

// UTF16Len is the length of the whole text in UTF-16 code units.
func (t Text) UTF16Len() int {
	n := 0
	for _, r := range t {
		n += UTF16Len(r.Text)
	}
	return n
}

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}
