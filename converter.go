package richtextify

import (
	"strings"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/cascade"
	"github.com/riverfjs/richtextify-go/internal/converter"
	"github.com/riverfjs/richtextify-go/internal/parser"
)

// Convert 将节点树转换为样式文本
//
// 入口处用配置中的基础字体初始化属性集合，之后每个阶段都可以假定字体存在。
func Convert(n Node, opts ...Option) Text {
	options := applyOptions(opts...)
	return newConverter(options.Config).Convert(n, SeedAttributes(options.Config))
}

// ConvertWithAttributes 使用调用方给定的继承属性转换节点
//
// inherited 必须包含字体，否则 panic（契约违反）。
func ConvertWithAttributes(n Node, inherited Attributes, opts ...Option) Text {
	options := applyOptions(opts...)
	return newConverter(options.Config).Convert(n, inherited)
}

// SeedAttributes 返回转换入口使用的初始属性集合
func SeedAttributes(config *RenderConfig) Attributes {
	if config == nil {
		config = DefaultConfig()
	}
	return attr.New(attr.Font{Family: config.Font.Family, Size: config.Font.Size})
}

// ConvertHTML 解析 HTML 并转换
func ConvertHTML(source string, opts ...Option) (Text, error) {
	return convertSource(source, FormatHTML, opts...)
}

// ConvertMarkdown 通过 goldmark 渲染 Markdown 并转换
func ConvertMarkdown(source string, opts ...Option) (Text, error) {
	return convertSource(source, FormatMarkdown, opts...)
}

// ConvertXHTML 解析 XHTML 并转换
func ConvertXHTML(source string, opts ...Option) (Text, error) {
	return convertSource(source, FormatXHTML, opts...)
}

func convertSource(source string, format Format, opts ...Option) (Text, error) {
	options := applyOptions(append(opts, WithFormat(format))...)
	root, err := parse(source, options)
	if err != nil {
		return nil, err
	}
	return newConverter(options.Config).Convert(root, SeedAttributes(options.Config)), nil
}

func parse(source string, options *ConvertOptions) (Node, error) {
	hopts := parser.HTMLOptions{RootSelector: options.RootSelector}
	switch options.Format {
	case FormatMarkdown:
		return parser.Markdown(source, hopts, options.Logger)
	case FormatXHTML:
		return parser.XHTML(strings.NewReader(source), options.Logger)
	default:
		return parser.HTML(strings.NewReader(source), hopts, options.Logger)
	}
}

func newConverter(config *RenderConfig) *converter.Converter {
	return converter.New(cascade.New(cascade.Options{
		Indent:           config.Layout.Indent,
		ImageOverlayIcon: config.Icons.ImageOverlay,
		VideoOverlayIcon: config.Icons.VideoOverlay,
	}))
}
