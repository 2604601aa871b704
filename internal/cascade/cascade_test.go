package cascade

import (
	"errors"
	"testing"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/media"
	"github.com/riverfjs/richtextify-go/internal/node"
)

var (
	regular  = attr.Font{Family: "serif", Size: 17}
	seed     = attr.New(regular)
	resolver = New(Options{Indent: 20, ImageOverlayIcon: "photo", VideoOverlayIcon: "play"})
)

// TestResolve_Traits 测试粗体、斜体等价类
func TestResolve_Traits(t *testing.T) {
	tests := []struct {
		name string
		want attr.Traits
	}{
		{"b", attr.TraitBold},
		{"strong", attr.TraitBold},
		{"STRONG", attr.TraitBold},
		{"i", attr.TraitItalic},
		{"em", attr.TraitItalic},
		{"cite", attr.TraitItalic},
		{"dfn", attr.TraitItalic},
		{"span", 0},
		{"h1", 0},
		{"custom-element", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(node.E(tt.name, nil), seed).Font()
			if got.Traits != tt.want {
				t.Errorf("traits = %s, want %s", got.Traits, tt.want)
			}
			if got.Family != regular.Family || got.Size != regular.Size {
				t.Errorf("base font changed: %s", got)
			}
		})
	}
}

// TestResolve_TraitsAccumulate 测试特征在嵌套中累积
func TestResolve_TraitsAccumulate(t *testing.T) {
	bold := resolver.Resolve(node.E("b", nil), seed)
	both := resolver.Resolve(node.E("em", nil), bold)
	if !both.Font().Traits.Has(attr.TraitBold | attr.TraitItalic) {
		t.Errorf("traits = %s, want bold and italic", both.Font().Traits)
	}
	again := resolver.Resolve(node.E("strong", nil), bold)
	if !again.Equal(bold) {
		t.Errorf("bold inside bold changed the set: %s", again)
	}
}

// TestResolve_Monotonicity 测试非粗斜体元素不改变字体特征
func TestResolve_Monotonicity(t *testing.T) {
	inherited := []attr.Set{
		seed,
		attr.New(regular.WithTraits(attr.TraitBold)),
		attr.New(regular.WithTraits(attr.TraitBold | attr.TraitItalic)),
	}
	names := []string{"p", "div", "a", "s", "u", "ul", "ol", "li", "blockquote", "h2", "img", "video", "br", "hr", "code", "unknown"}
	for _, in := range inherited {
		for _, name := range names {
			got := resolver.Resolve(node.E(name, []string{"href", "x", "src", "y"}), in).Font()
			if got != in.Font() {
				t.Errorf("%s: font %s, inherited %s", name, got, in.Font())
			}
		}
	}
}

// TestResolve_Idempotent 测试重复解析得到相同结果
func TestResolve_Idempotent(t *testing.T) {
	elements := []*node.Element{
		node.E("b", nil),
		node.E("a", []string{"href", "http://x"}),
		node.E("img", []string{"src", "http://img", "class", "aligncenter"}),
		node.E("video", []string{"poster", "http://p"}, node.E("source", []string{"src", "http://v"})),
		node.E("ol", []string{"start", "4"}),
		node.E("blockquote", nil),
		node.E("h3", nil),
	}
	for _, el := range elements {
		a := resolver.Resolve(el, seed)
		b := resolver.Resolve(el, seed)
		if !a.Equal(b) {
			t.Errorf("%s: %s != %s", el.Name, a, b)
		}
	}
}

// TestResolve_Link 测试链接目标
func TestResolve_Link(t *testing.T) {
	tests := []struct {
		name  string
		attrs []string
		want  string
	}{
		{"with href", []string{"href", "http://x"}, "http://x"},
		{"without href", nil, ""},
		{"empty href", []string{"href", ""}, ""},
		{"uppercase key", []string{"HREF", "http://y"}, "http://y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Resolve(node.E("a", tt.attrs), seed).Link()
			if !ok {
				t.Fatal("link attribute should be present")
			}
			if got != tt.want {
				t.Errorf("Link() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, ok := resolver.Resolve(node.E("span", []string{"href", "x"}), seed).Link(); ok {
		t.Error("href on a non-anchor produced a link")
	}
}

// TestResolve_Decorations 测试删除线和下划线等价类
func TestResolve_Decorations(t *testing.T) {
	for _, name := range []string{"s", "strike", "del"} {
		if !resolver.Resolve(node.E(name, nil), seed).Strikethrough() {
			t.Errorf("%s: no strikethrough", name)
		}
	}
	for _, name := range []string{"u", "ins"} {
		if !resolver.Resolve(node.E(name, nil), seed).Underline() {
			t.Errorf("%s: no underline", name)
		}
	}
}

// TestResolve_Lists 测试列表格式
func TestResolve_Lists(t *testing.T) {
	ul := resolver.Resolve(node.E("ul", nil), seed)
	ol := resolver.Resolve(node.E("ol", []string{"start", " 5 "}), ul)

	outer, _ := ul.List()
	if outer.Kind != attr.ListUnordered || outer.Depth != 1 || outer.Indent != 20 {
		t.Errorf("ul = %+v", outer)
	}
	inner, _ := ol.List()
	if inner.Kind != attr.ListOrdered || inner.Depth != 2 || inner.Start != 5 || inner.Indent != 40 {
		t.Errorf("ol = %+v", inner)
	}

	bad, _ := resolver.Resolve(node.E("ol", []string{"start", "x"}), seed).List()
	if bad.Start != 1 {
		t.Errorf("invalid start = %d, want 1", bad.Start)
	}
}

// TestResolve_BlockquoteAndHeading 测试引用和标题
func TestResolve_BlockquoteAndHeading(t *testing.T) {
	q, ok := resolver.Resolve(node.E("blockquote", nil), seed).Quote()
	if !ok || q.Depth != 1 || q.Indent != 20 {
		t.Errorf("Quote() = %+v, %v", q, ok)
	}
	h, ok := resolver.Resolve(node.E("h4", nil), seed).Heading()
	if !ok || h.Level != 4 {
		t.Errorf("Heading() = %+v, %v", h, ok)
	}
}

// TestResolve_Image 测试图片占位符
func TestResolve_Image(t *testing.T) {
	el := node.E("img", []string{"class", "alignment-center size-medium", "src", "http://img"})
	p := resolver.Resolve(el, seed).Media()
	if p == nil {
		t.Fatal("no media placeholder")
	}
	if p.Kind != media.KindImage || p.URL == nil || p.URL.String() != "http://img" {
		t.Errorf("placeholder = %+v", p)
	}
	if p.Alignment != media.AlignCenter || p.Size != media.SizeMedium {
		t.Errorf("alignment/size = %s/%s", p.Alignment, p.Size)
	}
	if p.OverlayIcon != "photo" {
		t.Errorf("OverlayIcon = %q", p.OverlayIcon)
	}

	none := resolver.Resolve(node.E("img", []string{"src", "http://[bad"}), seed).Media()
	if none == nil || none.URL != nil {
		t.Errorf("unparsable src should give a placeholder without URL, got %+v", none)
	}
}

// TestResolve_Video 测试视频占位符
func TestResolve_Video(t *testing.T) {
	tests := []struct {
		name    string
		el      *node.Element
		wantURL string
	}{
		{
			name:    "own src",
			el:      node.E("video", []string{"src", "http://a.mp4"}, node.E("source", []string{"src", "http://b.mp4"})),
			wantURL: "http://a.mp4",
		},
		{
			name: "source child",
			el: node.E("video", nil,
				node.T("fallback"),
				node.E("source", nil),
				node.E("source", []string{"src", "http://b.mp4"})),
			wantURL: "http://b.mp4",
		},
		{
			name:    "nothing",
			el:      node.E("video", []string{"src", "  "}),
			wantURL: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolver.Resolve(tt.el, seed).Media()
			if p == nil || p.Kind != media.KindVideo {
				t.Fatalf("placeholder = %+v", p)
			}
			got := ""
			if p.URL != nil {
				got = p.URL.String()
			}
			if got != tt.wantURL {
				t.Errorf("URL = %q, want %q", got, tt.wantURL)
			}
			if p.OverlayIcon != "play" {
				t.Errorf("OverlayIcon = %q", p.OverlayIcon)
			}
		})
	}
}

// TestResolve_MissingFont 测试缺少字体时 panic
func TestResolve_MissingFont(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, attr.ErrMissingFont) {
			t.Errorf("panic = %v, want ErrMissingFont", err)
		}
	}()
	resolver.Resolve(node.E("span", nil), attr.Set{})
}

// TestRules_Order 测试规则顺序
func TestRules_Order(t *testing.T) {
	if n := len(resolver.Rules(node.E("span", nil))); n != 0 {
		t.Errorf("span has %d rules, want 0", n)
	}
	if n := len(resolver.Rules(node.E("a", nil))); n != 1 {
		t.Errorf("a has %d rules, want 1", n)
	}
}
