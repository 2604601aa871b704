// Package richtextify 将解析后的标记文档树转换为带样式的扁平文本
//
// 输出是一组 Run，每个 Run 携带解析后的属性集合（字体特征、链接、
// 下划线/删除线、列表/引用格式、媒体占位符），块级元素边界以不可见的
// 结构标记 Run 表示，便于之后重建块结构。
//
// 核心功能：
//   - HTML / Markdown / XHTML → 样式文本（[]Run）
//   - 媒体占位符的布局计算（宽、高、水平居中）
//   - 可选的媒体获取管道（下载、探测尺寸、占位图）
//
// 主要 API：
//   - Convert(): 转换已有的节点树
//   - ConvertHTML() / ConvertMarkdown() / ConvertXHTML(): 解析并转换
//   - Process(): 完整处理，包括媒体获取
//
// 示例：
//
//	text, err := richtextify.ConvertHTML(`<p><b>hi</b></p>`)
//	for _, run := range text {
//	    if run.IsMarker() {
//	        continue
//	    }
//	    fmt.Println(run.Text, run.Attrs)
//	}
package richtextify

import (
	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/media"
	"github.com/riverfjs/richtextify-go/internal/node"
	"github.com/riverfjs/richtextify-go/internal/richtext"
)

// 导出类型别名
type (
	Node       = node.Node
	Element    = node.Element
	TextNode   = node.Text
	Comment    = node.Comment
	Attr       = node.Attr
	Run        = richtext.Run
	Text       = richtext.Text
	Attributes = attr.Set
	Key        = attr.Key
	Font       = attr.Font
	Traits     = attr.Traits

	Placeholder = media.Placeholder
	Dimensions  = media.Dimensions
	Insets      = media.Insets
	Geometry    = media.Geometry
	Provider    = media.Provider
	Media       = media.Media
)

// Attribute keys.
const (
	KeyFont          = attr.KeyFont
	KeyLink          = attr.KeyLink
	KeyStrikethrough = attr.KeyStrikethrough
	KeyUnderline     = attr.KeyUnderline
	KeyList          = attr.KeyList
	KeyQuote         = attr.KeyQuote
	KeyHeading       = attr.KeyHeading
	KeyMarker        = attr.KeyMarker
	KeyMedia         = attr.KeyMedia
	KeyRule          = attr.KeyRule
)

// Font traits.
const (
	TraitBold   = attr.TraitBold
	TraitItalic = attr.TraitItalic
)

// Layout computes where a media placeholder goes inside a container of the
// given width. See media.Layout.
func Layout(containerWidth float64, intrinsic *Dimensions, insets Insets) Geometry {
	return media.Layout(containerWidth, intrinsic, insets)
}
