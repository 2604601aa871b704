package main

import (
	"testing"

	"github.com/riverfjs/richtextify-go"
)

// TestDetectFormat 测试源格式识别
func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		flag    string
		want    richtextify.Format
		wantErr bool
	}{
		{name: "auto html", source: "page.html", flag: "auto", want: richtextify.FormatHTML},
		{name: "auto markdown", source: "README.md", flag: "auto", want: richtextify.FormatMarkdown},
		{name: "auto markdown long suffix", source: "notes.MARKDOWN", flag: "", want: richtextify.FormatMarkdown},
		{name: "auto xhtml", source: "ch01.xhtml", flag: "auto", want: richtextify.FormatXHTML},
		{name: "auto xml", source: "feed.xml", flag: "", want: richtextify.FormatXHTML},
		{name: "auto stdin", source: "-", flag: "auto", want: richtextify.FormatHTML},
		{name: "flag overrides suffix", source: "page.html", flag: "markdown", want: richtextify.FormatMarkdown},
		{name: "flag md alias", source: "-", flag: "md", want: richtextify.FormatMarkdown},
		{name: "flag xml alias", source: "doc.md", flag: "XML", want: richtextify.FormatXHTML},
		{name: "flag html", source: "doc.xhtml", flag: "html", want: richtextify.FormatHTML},
		{name: "unknown flag", source: "page.html", flag: "rtf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectFormat(tt.source, tt.flag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("detectFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("detectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParseSize 测试 WIDTHxHEIGHT 参数解析
func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    richtextify.Dimensions
		wantErr bool
	}{
		{name: "integers", input: "640x480", want: richtextify.Dimensions{Width: 640, Height: 480}},
		{name: "uppercase separator", input: "640X480", want: richtextify.Dimensions{Width: 640, Height: 480}},
		{name: "fractions", input: "12.5x7.25", want: richtextify.Dimensions{Width: 12.5, Height: 7.25}},
		{name: "missing separator", input: "640", wantErr: true},
		{name: "bad width", input: "widex480", wantErr: true},
		{name: "bad height", input: "640x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseSize(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
