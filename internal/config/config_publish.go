package config

import "strings"

// PublishConfig holds output tree configuration for the publisher
type PublishConfig struct {
	OutputDir string `env:"OUTPUT_DIR" envDefault:"dist/api"`
	BaseURL   string `env:"BASE_URL" envDefault:"https://utxo.cz/api"`
	IDPrefix  string `env:"ID_PREFIX" envDefault:"utxo"`
}

// URL joins path segments onto the base URL.
func (c *PublishConfig) URL(segments ...string) string {
	base := strings.TrimRight(c.BaseURL, "/")
	if len(segments) == 0 {
		return base
	}
	return base + "/" + strings.Join(segments, "/")
}
