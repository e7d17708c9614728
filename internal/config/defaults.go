package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
