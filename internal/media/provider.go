package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/disintegration/imaging"
)

// ErrNotMedia is returned when fetched bytes are neither an image nor a video.
var ErrNotMedia = errors.New("data is not a supported image or video")

// ErrTooLarge is returned when a response body exceeds HTTPProvider.MaxBytes.
var ErrTooLarge = errors.New("media exceeds size limit")

// Media is the representation a provider returns for a placeholder.
type Media struct {
	URL         string
	MIME        string
	Data        []byte
	Dimensions  *Dimensions // nil when the size could not be determined
	Placeholder bool        // true when Data is a stand-in image
}

// Provider supplies media for placeholders. The converter only records the
// request intent; hosts call a Provider when they are ready to fetch.
type Provider interface {
	// Fetch downloads and probes the media behind u.
	Fetch(ctx context.Context, u *url.URL) (*Media, error)
	// Placeholder returns a stand-in image to show while p is unavailable.
	Placeholder(p *Placeholder) *Media
}

// HTTPProvider fetches media over HTTP(S).
type HTTPProvider struct {
	Client    *http.Client
	UserAgent string
	MaxBytes  int64
	// Stand-in image size and colours.
	PlaceholderSize Dimensions
	Background      color.Color
	Overlay         color.Color
}

// NewHTTPProvider returns a provider with a bounded client.
func NewHTTPProvider(timeout time.Duration, userAgent string, maxBytes int64) *HTTPProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProvider{
		Client:          &http.Client{Timeout: timeout},
		UserAgent:       userAgent,
		MaxBytes:        maxBytes,
		PlaceholderSize: Dimensions{Width: 160, Height: 120},
		Background:      color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		Overlay:         color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
}

// Fetch implements Provider.
func (p *HTTPProvider) Fetch(ctx context.Context, u *url.URL) (*Media, error) {
	if u == nil {
		return nil, errors.New("no media url")
	}
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var body io.Reader = resp.Body
	if p.MaxBytes > 0 {
		// one extra byte tells a body at the limit from one past it
		body = io.LimitReader(resp.Body, p.MaxBytes+1)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return nil, fmt.Errorf("failed to read media data: %w", err)
	}
	if p.MaxBytes > 0 && int64(buf.Len()) > p.MaxBytes {
		return nil, fmt.Errorf("%s: %w (%d bytes)", u, ErrTooLarge, p.MaxBytes)
	}

	mime, dims, err := Probe(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", u, err)
	}
	return &Media{
		URL:        u.String(),
		MIME:       mime,
		Data:       buf.Bytes(),
		Dimensions: dims,
	}, nil
}

// Placeholder implements Provider. Video placeholders get a centered overlay
// block where the play icon goes.
func (p *HTTPProvider) Placeholder(ph *Placeholder) *Media {
	w, h := int(p.PlaceholderSize.Width), int(p.PlaceholderSize.Height)
	if w <= 0 || h <= 0 {
		w, h = 160, 120
	}
	bg := p.Background
	if bg == nil {
		bg = color.Gray{Y: 0xe0}
	}
	var img image.Image = imaging.New(w, h, bg)
	if ph != nil && ph.Kind == KindVideo {
		ov := p.Overlay
		if ov == nil {
			ov = color.Gray{Y: 0x80}
		}
		side := min(w, h) / 3
		icon := imaging.New(side, side, ov)
		img = imaging.PasteCenter(img, icon)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// encoding an in-memory NRGBA cannot fail
		panic(err)
	}
	m := &Media{
		MIME:        "image/png",
		Data:        buf.Bytes(),
		Dimensions:  &Dimensions{Width: float64(w), Height: float64(h)},
		Placeholder: true,
	}
	if ph != nil && ph.URL != nil {
		m.URL = ph.URL.String()
	}
	return m
}
