package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
