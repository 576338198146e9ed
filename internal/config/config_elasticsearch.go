package config

// ElasticsearchConfig holds configuration for the optional search export.
// The export only runs when a URL is configured.
type ElasticsearchConfig struct {
	URL      string `env:"URL"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Index    string `env:"INDEX" envDefault:"utxo_records"`
}

// IsConfigured returns true if the search export should run
func (c *ElasticsearchConfig) IsConfigured() bool {
	return c.URL != ""
}

// HasCredentials returns true if authentication credentials are configured
func (c *ElasticsearchConfig) HasCredentials() bool {
	return c.User != "" && c.Password != ""
}
