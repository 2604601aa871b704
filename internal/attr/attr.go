// Package attr implements the attribute set carried by every styled run.
//
// Keys form a closed enumeration and every key accepts exactly one value
// type. Sets are copy-on-write: With returns a new set and never touches the
// receiver, so a child can override keys without affecting its parent.
package attr

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/riverfjs/richtextify-go/internal/media"
)

// Key identifies one attribute slot.
type Key int

const (
	KeyFont Key = iota
	KeyLink
	KeyStrikethrough
	KeyUnderline
	KeyList
	KeyQuote
	KeyHeading
	KeyMarker
	KeyMedia
	KeyRule
	keyCount
)

var keyNames = [keyCount]string{
	KeyFont:          "font",
	KeyLink:          "link",
	KeyStrikethrough: "strikethrough",
	KeyUnderline:     "underline",
	KeyList:          "list",
	KeyQuote:         "quote",
	KeyHeading:       "heading",
	KeyMarker:        "marker",
	KeyMedia:         "media",
	KeyRule:          "rule",
}

func (k Key) String() string {
	if k >= 0 && k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Keys lists all keys in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Value is the sealed union of attribute values.
type Value interface {
	key() Key
}

// Link is the target of an anchor. An empty Link is still a link.
type Link string

// Flag is an on/off decoration. Each decoration key gets its own named
// flag type so values cannot be stored under the wrong key.
type Flag bool

type (
	Strikethrough Flag
	Underline     Flag
)

// Media wraps a placeholder attached by an image or video element.
type Media struct {
	*media.Placeholder
}

func (Font) key() Key          { return KeyFont }
func (Link) key() Key          { return KeyLink }
func (Strikethrough) key() Key { return KeyStrikethrough }
func (Underline) key() Key     { return KeyUnderline }
func (ListStyle) key() Key     { return KeyList }
func (QuoteStyle) key() Key    { return KeyQuote }
func (HeadingStyle) key() Key  { return KeyHeading }
func (Marker) key() Key        { return KeyMarker }
func (Media) key() Key         { return KeyMedia }
func (Rule) key() Key          { return KeyRule }

// Rule marks a horizontal rule attachment.
type Rule struct{}

// ErrMissingFont is the panic value raised when a set without a font reaches
// a stage that requires one.
var ErrMissingFont = errors.New("attribute set has no font descriptor")

// Set is an immutable attribute set.
type Set struct {
	values [keyCount]Value
}

// New returns a set holding only the given font.
func New(font Font) Set {
	return Set{}.With(font)
}

// With returns a copy of s with v stored under its key.
func (s Set) With(v Value) Set {
	if v == nil {
		panic("attr: nil value")
	}
	s.values[v.key()] = v
	return s
}

// Without returns a copy of s with k removed.
func (s Set) Without(k Key) Set {
	s.values[k] = nil
	return s
}

// Get returns the value stored under k.
func (s Set) Get(k Key) (Value, bool) {
	v := s.values[k]
	return v, v != nil
}

// Has reports whether k is present.
func (s Set) Has(k Key) bool {
	return s.values[k] != nil
}

// Font returns the font descriptor. It panics with ErrMissingFont if absent.
func (s Set) Font() Font {
	f, ok := s.values[KeyFont].(Font)
	if !ok {
		panic(ErrMissingFont)
	}
	return f
}

// Link returns the link target and whether the set is a link.
func (s Set) Link() (string, bool) {
	l, ok := s.values[KeyLink].(Link)
	return string(l), ok
}

// Strikethrough reports whether the strikethrough flag is on.
func (s Set) Strikethrough() bool {
	v, _ := s.values[KeyStrikethrough].(Strikethrough)
	return bool(v)
}

// Underline reports whether the underline flag is on.
func (s Set) Underline() bool {
	v, _ := s.values[KeyUnderline].(Underline)
	return bool(v)
}

// List returns the list style, if any.
func (s Set) List() (ListStyle, bool) {
	v, ok := s.values[KeyList].(ListStyle)
	return v, ok
}

// Quote returns the blockquote style, if any.
func (s Set) Quote() (QuoteStyle, bool) {
	v, ok := s.values[KeyQuote].(QuoteStyle)
	return v, ok
}

// Heading returns the heading style, if any.
func (s Set) Heading() (HeadingStyle, bool) {
	v, ok := s.values[KeyHeading].(HeadingStyle)
	return v, ok
}

// Marker returns the structural marker, if any.
func (s Set) Marker() (Marker, bool) {
	v, ok := s.values[KeyMarker].(Marker)
	return v, ok
}

// Media returns the attached placeholder, or nil.
func (s Set) Media() *media.Placeholder {
	v, ok := s.values[KeyMedia].(Media)
	if !ok {
		return nil
	}
	return v.Placeholder
}

// IsRule reports whether the set marks a horizontal rule.
func (s Set) IsRule() bool {
	_, ok := s.values[KeyRule].(Rule)
	return ok
}

// Equal reports whether both sets hold equal values for every key.
func (s Set) Equal(o Set) bool {
	for k := range s.values {
		if !reflect.DeepEqual(s.values[k], o.values[k]) {
			return false
		}
	}
	return true
}

// String renders the set for debugging, e.g. "{font=serif 17 [bold] link=x}".
func (s Set) String() string {
	parts := make([]string, 0, keyCount)
	for _, k := range Keys() {
		if v := s.values[k]; v != nil {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}
	slices.Sort(parts)
	return "{" + strings.Join(parts, " ") + "}"
}

func (m Media) String() string {
	if m.Placeholder == nil {
		return "<nil>"
	}
	src := ""
	if m.URL != nil {
		src = m.URL.String()
	}
	return fmt.Sprintf("%s(%s %s %s)", m.Kind, src, m.Alignment, m.Placeholder.Size)
}
