package types

import "time"

// FontConfig 基础字体
type FontConfig struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// Icons 定义媒体占位符使用的图标名
type Icons struct {
	ImageOverlay string `yaml:"image_overlay"`
	VideoOverlay string `yaml:"video_overlay"`
}

// DefaultIcons 返回默认图标配置
func DefaultIcons() Icons {
	return Icons{
		ImageOverlay: "",
		VideoOverlay: "play",
	}
}

// LayoutConfig 媒体布局参数
type LayoutConfig struct {
	ContainerWidth float64 `yaml:"container_width"`
	InsetTop       float64 `yaml:"inset_top"`
	InsetBottom    float64 `yaml:"inset_bottom"`
	Indent         float64 `yaml:"indent"`
}

// FetchConfig 媒体下载参数
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	MaxBytes  int64         `yaml:"max_bytes"`
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Font   FontConfig   `yaml:"font"`
	Icons  Icons        `yaml:"icons"`
	Layout LayoutConfig `yaml:"layout"`
	Fetch  FetchConfig  `yaml:"fetch"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Font: FontConfig{
			Family: "Noto Serif",
			Size:   16,
		},
		Icons: DefaultIcons(),
		Layout: LayoutConfig{
			ContainerWidth: 320,
			InsetTop:       8,
			InsetBottom:    8,
			Indent:         16,
		},
		Fetch: FetchConfig{
			Timeout:   10 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
			MaxBytes:  20 << 20,
		},
	}
}
