// Package parser holds the front-ends that build node trees from source
// documents: HTML, Markdown and XHTML.
package parser

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"github.com/riverfjs/richtextify-go/internal/node"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(), // 保留内联 HTML，例如带 class 的 <img>
	),
}

// Markdown renders markdown to HTML with goldmark and parses the result with
// the HTML front-end.
func Markdown(markdown string, opts HTMLOptions, log *zap.Logger) (node.Node, error) {
	if log == nil {
		log = zap.NewNop()
	}
	md := goldmark.New(StandardOptions...)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("could not render markdown: %w", err)
	}
	log.Debug("Rendered markdown", zap.Int("html_bytes", buf.Len()))
	return HTML(&buf, opts, log)
}
