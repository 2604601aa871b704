package marker

import (
	"testing"

	"golang.org/x/net/html/atom"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/media"
	"github.com/riverfjs/richtextify-go/internal/richtext"
)

var base = attr.New(attr.Font{Family: "serif", Size: 17})

// TestPolicy 测试块级元素的标记策略
func TestPolicy(t *testing.T) {
	blocks := []atom.Atom{atom.P, atom.Li, atom.Ul, atom.Ol, atom.Blockquote, atom.H1, atom.H6, atom.Pre, atom.Div}
	for _, k := range blocks {
		if p := Policy(k); !p.Opening || !p.Closing {
			t.Errorf("Policy(%s) = %+v, want both markers", k, p)
		}
		if !IsBlock(k) {
			t.Errorf("IsBlock(%s) = false", k)
		}
	}
	inline := []atom.Atom{atom.B, atom.A, atom.Span, atom.Em, atom.Code, 0}
	for _, k := range inline {
		if p := Policy(k); p.Opening || p.Closing {
			t.Errorf("Policy(%s) = %+v, want none", k, p)
		}
	}
}

// TestRun 测试标记 run 的构造
func TestRun(t *testing.T) {
	open := Run(attr.MarkerOpening, atom.P, base)
	if open.Text != richtext.OpeningChar {
		t.Errorf("opening text = %q", open.Text)
	}
	m, ok := open.Attrs.Marker()
	if !ok || m.Kind != attr.MarkerOpening || m.Element != atom.P {
		t.Errorf("opening marker = %+v, %v", m, ok)
	}
	if open.Attrs.Font() != base.Font() {
		t.Error("marker lost the style context")
	}
	if base.Has(attr.KeyMarker) {
		t.Error("Run() modified the attribute set")
	}

	closing := Run(attr.MarkerClosing, atom.Li, base)
	if closing.Text != richtext.ClosingChar {
		t.Errorf("closing text = %q", closing.Text)
	}
}

// TestImplicit 测试固定表示
func TestImplicit(t *testing.T) {
	p := media.NewPlaceholder(media.KindImage, "http://img", "", "", "")
	withMedia := base.With(attr.Media{Placeholder: p})

	tests := []struct {
		kind     atom.Atom
		attrs    attr.Set
		wantText string
		check    func(attr.Set) bool
	}{
		{atom.Br, base, "\n", func(s attr.Set) bool { return s.Equal(base) }},
		{atom.Img, withMedia, richtext.ObjectChar, func(s attr.Set) bool { return s.Media() == p }},
		{atom.Video, withMedia, richtext.ObjectChar, func(s attr.Set) bool { return s.Media() == p }},
		{atom.Hr, base, richtext.ObjectChar, func(s attr.Set) bool { return s.IsRule() }},
	}
	for _, tt := range tests {
		repr, ok := Implicit(tt.kind)
		if !ok {
			t.Errorf("Implicit(%s) missing", tt.kind)
			continue
		}
		out := repr(tt.attrs)
		if len(out) != 1 {
			t.Errorf("%s: %d runs, want 1", tt.kind, len(out))
			continue
		}
		if out[0].Text != tt.wantText {
			t.Errorf("%s: text %q, want %q", tt.kind, out[0].Text, tt.wantText)
		}
		if !tt.check(out[0].Attrs) {
			t.Errorf("%s: attrs %s", tt.kind, out[0].Attrs)
		}
	}

	for _, k := range []atom.Atom{atom.P, atom.Span, 0} {
		if _, ok := Implicit(k); ok {
			t.Errorf("Implicit(%s) should not exist", k)
		}
	}
}
