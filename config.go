package richtextify

import (
	"fmt"
	"os"
	"sync"

	yaml "gopkg.in/yaml.v3"

	"github.com/riverfjs/richtextify-go/internal/types"
)

// 导出类型别名
type (
	RenderConfig = types.RenderConfig
	FontConfig   = types.FontConfig
	Icons        = types.Icons
	LayoutConfig = types.LayoutConfig
	FetchConfig  = types.FetchConfig
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig reads a YAML configuration file on top of the defaults. An empty
// path returns a fresh copy of the defaults.
func LoadConfig(path string) (*RenderConfig, error) {
	cfg := types.DefaultRenderConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration '%s': %w", path, err)
	}
	return cfg, nil
}

// DumpConfig renders cfg as YAML.
func DumpConfig(cfg *RenderConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
