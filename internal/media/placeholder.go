// Package media describes embedded media placeholders, computes their
// on-screen geometry and fetches the bytes behind them.
package media

import (
	"bytes"
	"crypto/sha256"
	"net/url"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Kind of embedded media.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Alignment declared on the media element. AlignNone is the default.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// Size class declared on the media element. SizeFull is the default.
type Size int

const (
	SizeFull Size = iota
	SizeThumbnail
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeThumbnail:
		return "thumbnail"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "full"
	}
}

// Both the WordPress spelling ("aligncenter") and the long one
// ("alignment-center") are accepted. Matching is case-sensitive.
var alignmentTokens = map[string]Alignment{
	"alignnone":        AlignNone,
	"alignleft":        AlignLeft,
	"aligncenter":      AlignCenter,
	"alignright":       AlignRight,
	"alignment-none":   AlignNone,
	"alignment-left":   AlignLeft,
	"alignment-center": AlignCenter,
	"alignment-right":  AlignRight,
}

var sizeTokens = map[string]Size{
	"size-thumbnail": SizeThumbnail,
	"size-medium":    SizeMedium,
	"size-large":     SizeLarge,
	"size-full":      SizeFull,
}

// AlignmentFromToken maps a class token to an alignment.
func AlignmentFromToken(token string) (Alignment, bool) {
	a, ok := alignmentTokens[token]
	return a, ok
}

// SizeFromToken maps a class token to a size class.
func SizeFromToken(token string) (Size, bool) {
	s, ok := sizeTokens[token]
	return s, ok
}

// Dimensions is an intrinsic or on-screen size in points.
type Dimensions struct {
	Width  float64
	Height float64
}

// Placeholder stands in for an embedded image or video until the host has
// fetched and laid it out. Placeholders are values: the pipeline resolves a
// copy rather than the one carried by a run.
type Placeholder struct {
	ID           string
	Kind         Kind
	URL          *url.URL // nil when absent or unparsable
	SecondaryURL *url.URL // poster image for video
	Alignment    Alignment
	Size         Size
	OverlayIcon  string
	Intrinsic    *Dimensions // nil until resolved
}

// NewPlaceholder builds a placeholder from raw element attributes. Unparsable
// URLs become nil and unknown class tokens are ignored.
func NewPlaceholder(kind Kind, src, secondary, class, overlayIcon string) *Placeholder {
	p := &Placeholder{
		Kind:         kind,
		URL:          parseURL(src),
		SecondaryURL: parseURL(secondary),
		OverlayIcon:  overlayIcon,
	}
	for _, token := range strings.Fields(class) {
		if a, ok := AlignmentFromToken(token); ok {
			p.Alignment = a
		}
		if s, ok := SizeFromToken(token); ok {
			p.Size = s
		}
	}
	p.ID = placeholderID(kind, src, secondary, class)
	return p
}

// Resolved returns a copy of p with the intrinsic size set.
func (p *Placeholder) Resolved(d Dimensions) *Placeholder {
	cp := *p
	cp.Intrinsic = &d
	return &cp
}

// Layout computes the on-screen geometry of p inside a container.
func (p *Placeholder) Layout(containerWidth float64, insets Insets) Geometry {
	return Layout(containerWidth, p.Intrinsic, insets)
}

func parseURL(raw string) *url.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return u
}

// placeholderID derives a ULID from the media attributes so the same element
// always gets the same identifier.
func placeholderID(kind Kind, src, secondary, class string) string {
	sum := sha256.Sum256([]byte(kind.String() + "\x00" + src + "\x00" + secondary + "\x00" + class))
	id, err := ulid.New(0, bytes.NewReader(sum[:]))
	if err != nil {
		// entropy reader always has enough bytes
		panic(err)
	}
	return id.String()
}
