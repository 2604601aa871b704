package richtextify

import (
	"go.uber.org/zap"

	"github.com/riverfjs/richtextify-go/internal/media"
)

// Format selects the front-end used to parse source documents.
type Format int

const (
	FormatHTML Format = iota
	FormatMarkdown
	FormatXHTML
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatXHTML:
		return "xhtml"
	default:
		return "html"
	}
}

// ConvertOptions holds options for conversion.
type ConvertOptions struct {
	Config       *RenderConfig
	Format       Format
	RootSelector string
	Provider     media.Provider
	Logger       *zap.Logger
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithFormat selects the source format for Process.
func WithFormat(format Format) Option {
	return func(opts *ConvertOptions) {
		opts.Format = format
	}
}

// WithRootSelector converts only the first element matching a CSS selector.
// Applies to HTML and Markdown sources.
func WithRootSelector(selector string) Option {
	return func(opts *ConvertOptions) {
		opts.RootSelector = selector
	}
}

// WithProvider sets the media provider used by Process.
func WithProvider(provider media.Provider) Option {
	return func(opts *ConvertOptions) {
		opts.Provider = provider
	}
}

// WithLogger overrides the package Logger for one call.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *ConvertOptions) {
		opts.Logger = logger
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
		Format: FormatHTML,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	if options.Logger == nil {
		options.Logger = Logger
	}
	return options
}
