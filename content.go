package richtextify

import (
	"github.com/riverfjs/richtextify-go/internal/media"
)

// ContentType represents the type of an embedded media item.
type ContentType int

const (
	// ContentTypeImage represents an image attachment.
	ContentTypeImage ContentType = iota
	// ContentTypeVideo represents a video attachment.
	ContentTypeVideo
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeImage:
		return "image"
	case ContentTypeVideo:
		return "video"
	default:
		return "unknown"
	}
}

// MediaItem is one placeholder together with what the provider returned.
type MediaItem struct {
	Placeholder *Placeholder
	Media       *Media // nil when the placeholder has no URL and no stand-in
	Err         error  // fetch error, if the stand-in is in use
}

// GetContentType returns the kind of media.
func (m *MediaItem) GetContentType() ContentType {
	if m.Placeholder != nil && m.Placeholder.Kind == media.KindVideo {
		return ContentTypeVideo
	}
	return ContentTypeImage
}

// Document is the result of Process.
type Document struct {
	Text  Text
	Items []*MediaItem          // in document order, one per placeholder ID
	Media map[string]*MediaItem // by placeholder ID
	// FetchErr combines every fetch failure. Failed items still carry a
	// stand-in image, so the document is usable regardless.
	FetchErr error

	config *RenderConfig
}

// Geometry lays out a placeholder using the document's container width and
// insets.
func (d *Document) Geometry(p *Placeholder) Geometry {
	if p == nil {
		return Geometry{}
	}
	lc := DefaultConfig().Layout
	if d.config != nil {
		lc = d.config.Layout
	}
	return p.Layout(lc.ContainerWidth, Insets{Top: lc.InsetTop, Bottom: lc.InsetBottom})
}

// Placeholders returns every media placeholder carried by text, in order.
func Placeholders(text Text) []*Placeholder {
	var out []*Placeholder
	for _, run := range text {
		if p := run.Attrs.Media(); p != nil {
			out = append(out, p)
		}
	}
	return out
}
