package richtextify

import (
	"reflect"
	"strings"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/richtext"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Offsets in Range and Block are measured in UTF-16 code units, the unit
// text views on most platforms index by.
func UTF16Len(text string) int {
	return richtext.UTF16Len(text)
}

// Range is a span of text sharing one attribute value.
type Range struct {
	Key    Key
	Offset int
	Length int
	Value  attr.Value
}

// Ranges flattens runs into per-key ranges, merging adjacent runs that carry
// equal values. Ranges are ordered by start offset, then by key.
func Ranges(text Text) []Range {
	var (
		out  []Range
		open = make(map[Key]int) // key -> index in out of the range still growing
		pos  int
	)
	for _, run := range text {
		length := UTF16Len(run.Text)
		for _, k := range attr.Keys() {
			v, ok := run.Attrs.Get(k)
			idx, growing := open[k]
			switch {
			case !ok:
				delete(open, k)
			case growing && out[idx].Offset+out[idx].Length == pos && reflect.DeepEqual(out[idx].Value, v):
				out[idx].Length += length
			default:
				open[k] = len(out)
				out = append(out, Range{Key: k, Offset: pos, Length: length, Value: v})
			}
		}
		pos += length
	}
	return out
}

// Block is a block element reconstructed from structural markers. Start and
// End delimit the content between the two markers.
type Block struct {
	Element string
	Start   int
	End     int
	Depth   int
}

// Blocks pairs opening and closing markers. Closing markers without a
// matching opening are ignored; blocks left open run to the end of text.
// A closing marker that matches a frame below the top of the stack also
// ends every frame opened after it.
func Blocks(text Text) []Block {
	type frame struct {
		index int
		m     attr.Marker
	}
	var (
		out   []Block
		stack []frame
		pos   int
	)
	for _, run := range text {
		length := UTF16Len(run.Text)
		if m, ok := run.Attrs.Marker(); ok {
			switch m.Kind {
			case attr.MarkerOpening:
				stack = append(stack, frame{index: len(out), m: m})
				out = append(out, Block{Element: m.Element.String(), Start: pos + length, Depth: len(stack) - 1})
			case attr.MarkerClosing:
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i].m.Element == m.Element {
						// misnested frames above the match close with it
						for j := len(stack) - 1; j >= i; j-- {
							out[stack[j].index].End = pos
						}
						stack = stack[:i]
						break
					}
				}
			}
		}
		pos += length
	}
	for _, f := range stack {
		out[f.index].End = pos
	}
	return out
}

// StripMarkers returns text without structural marker runs.
func StripMarkers(text Text) Text {
	out := make(Text, 0, len(text))
	for _, run := range text {
		if !run.IsMarker() {
			out = append(out, run)
		}
	}
	return out
}

// PlainText extracts readable text. Every block starts and ends on its own
// line; markers never produce blank lines.
func PlainText(text Text) string {
	var b strings.Builder
	newline := true
	for _, run := range text {
		if run.IsMarker() {
			if !newline {
				b.WriteString("\n")
				newline = true
			}
			continue
		}
		if run.Text == "" {
			continue
		}
		b.WriteString(run.Text)
		newline = strings.HasSuffix(run.Text, "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
