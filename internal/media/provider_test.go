package media

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// TestHTTPProvider_Fetch 测试下载媒体
func TestHTTPProvider_Fetch(t *testing.T) {
	pngData := encodePNG(t, 64, 32)
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/test.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(pngData)
		case "/text":
			w.Write([]byte("hello"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	p := NewHTTPProvider(5*time.Second, "richtextify-test", 0)
	ctx := context.Background()

	t.Run("image", func(t *testing.T) {
		u, _ := url.Parse(server.URL + "/test.png")
		m, err := p.Fetch(ctx, u)
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if m.MIME != "image/png" {
			t.Errorf("MIME = %q", m.MIME)
		}
		if m.Dimensions == nil || *m.Dimensions != (Dimensions{Width: 64, Height: 32}) {
			t.Errorf("Dimensions = %v", m.Dimensions)
		}
		if !bytes.Equal(m.Data, pngData) {
			t.Error("Data differs from served bytes")
		}
		if m.Placeholder {
			t.Error("fetched media marked as placeholder")
		}
		if gotUA != "richtextify-test" {
			t.Errorf("User-Agent = %q", gotUA)
		}
	})

	t.Run("not found", func(t *testing.T) {
		u, _ := url.Parse(server.URL + "/missing.png")
		if _, err := p.Fetch(ctx, u); err == nil || !strings.Contains(err.Error(), "404") {
			t.Errorf("Fetch() error = %v, want HTTP 404", err)
		}
	})

	t.Run("not media", func(t *testing.T) {
		u, _ := url.Parse(server.URL + "/text")
		if _, err := p.Fetch(ctx, u); err == nil {
			t.Error("Fetch() should reject non-media bytes")
		}
	})

	t.Run("nil url", func(t *testing.T) {
		if _, err := p.Fetch(ctx, nil); err == nil {
			t.Error("Fetch(nil) should fail")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		u, _ := url.Parse(server.URL + "/test.png")
		if _, err := p.Fetch(cctx, u); err == nil {
			t.Error("Fetch() with cancelled context should fail")
		}
	})

	t.Run("size limit", func(t *testing.T) {
		u, _ := url.Parse(server.URL + "/test.png")

		limited := NewHTTPProvider(5*time.Second, "", 16)
		m, err := limited.Fetch(ctx, u)
		if !errors.Is(err, ErrTooLarge) {
			t.Fatalf("Fetch() error = %v, want ErrTooLarge", err)
		}
		if m != nil {
			t.Errorf("Fetch() returned truncated media: %d bytes", len(m.Data))
		}

		exact := NewHTTPProvider(5*time.Second, "", int64(len(pngData)))
		m, err = exact.Fetch(ctx, u)
		if err != nil {
			t.Fatalf("Fetch() at the exact limit error = %v", err)
		}
		if len(m.Data) != len(pngData) || m.Dimensions == nil {
			t.Errorf("Fetch() at the exact limit = %d bytes, dims %v", len(m.Data), m.Dimensions)
		}
	})
}

// TestHTTPProvider_Placeholder 测试占位图生成
func TestHTTPProvider_Placeholder(t *testing.T) {
	p := NewHTTPProvider(0, "", 0)

	tests := []struct {
		name string
		ph   *Placeholder
	}{
		{"image", NewPlaceholder(KindImage, "http://img", "", "", "")},
		{"video", NewPlaceholder(KindVideo, "", "", "", "play")},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := p.Placeholder(tt.ph)
			if !m.Placeholder {
				t.Error("Placeholder flag not set")
			}
			if m.MIME != "image/png" {
				t.Errorf("MIME = %q", m.MIME)
			}
			cfg, err := png.DecodeConfig(bytes.NewReader(m.Data))
			if err != nil {
				t.Fatalf("stand-in is not a PNG: %v", err)
			}
			if cfg.Width != 160 || cfg.Height != 120 {
				t.Errorf("stand-in size = %dx%d, want 160x120", cfg.Width, cfg.Height)
			}
		})
	}

	m := p.Placeholder(tests[0].ph)
	if m.URL != "http://img" {
		t.Errorf("URL = %q, want http://img", m.URL)
	}
}
