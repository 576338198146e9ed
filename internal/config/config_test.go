package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected *Config
	}{
		{
			name:    "load with defaults",
			envVars: map[string]string{},
			expected: &Config{
				Application: ApplicationConfig{
					Mode:   ModeProduction,
					Silent: false,
				},
				Source: SourceConfig{
					Dir:    "data",
					Locale: "en",
				},
				Publish: PublishConfig{
					OutputDir: "dist/api",
					BaseURL:   "https://utxo.cz/api",
					IDPrefix:  "utxo",
				},
				Schema: SchemaConfig{
					Dir:            "schema",
					DefaultVersion: "1",
				},
				Elasticsearch: ElasticsearchConfig{
					Index: "utxo_records",
				},
			},
		},
		{
			name: "load with custom values",
			envVars: map[string]string{
				"MODE":                   "development",
				"SILENT":                 "true",
				"SOURCE_DIR":             "/srv/entries",
				"SOURCE_LOCALE":          "cs",
				"PUBLISH_OUTPUT_DIR":     "/srv/out",
				"PUBLISH_BASE_URL":       "https://api.example.com",
				"PUBLISH_ID_PREFIX":      "conf",
				"SCHEMA_DIR":             "/srv/schema",
				"SCHEMA_VERSION":         "2",
				"ELASTICSEARCH_URL":      "https://es.example.com:9200",
				"ELASTICSEARCH_USER":     "testuser",
				"ELASTICSEARCH_PASSWORD": "testpass",
				"ELASTICSEARCH_INDEX":    "custom_records",
			},
			expected: &Config{
				Application: ApplicationConfig{
					Mode:   ModeDevelopment,
					Silent: true,
				},
				Source: SourceConfig{
					Dir:    "/srv/entries",
					Locale: "cs",
				},
				Publish: PublishConfig{
					OutputDir: "/srv/out",
					BaseURL:   "https://api.example.com",
					IDPrefix:  "conf",
				},
				Schema: SchemaConfig{
					Dir:            "/srv/schema",
					DefaultVersion: "2",
				},
				Elasticsearch: ElasticsearchConfig{
					URL:      "https://es.example.com:9200",
					User:     "testuser",
					Password: "testpass",
					Index:    "custom_records",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestMode(t *testing.T) {
	assert.True(t, ModeDevelopment.IsDevelopment())
	assert.False(t, ModeDevelopment.IsProduction())
	assert.True(t, ModeProduction.IsProduction())
	assert.False(t, ModeProduction.IsDevelopment())
}

func TestPublishConfigURL(t *testing.T) {
	cfg := &PublishConfig{BaseURL: "https://utxo.cz/api/"}

	assert.Equal(t, "https://utxo.cz/api", cfg.URL())
	assert.Equal(t, "https://utxo.cz/api/2024/speakers.json", cfg.URL("2024", "speakers.json"))
	assert.Equal(t, "https://utxo.cz/api/schema/1", cfg.URL("schema", "1"))
}

func TestElasticsearchConfig(t *testing.T) {
	cfg := &ElasticsearchConfig{}
	assert.False(t, cfg.IsConfigured())
	assert.False(t, cfg.HasCredentials())

	cfg.URL = "http://localhost:9200"
	assert.True(t, cfg.IsConfigured())

	cfg.User = "user"
	assert.False(t, cfg.HasCredentials())
	cfg.Password = "pass"
	assert.True(t, cfg.HasCredentials())
}

func TestConfigContext(t *testing.T) {
	cfg := &Config{}
	ctx := WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, GetConfig(ctx))

	assert.Panics(t, func() {
		GetConfig(context.Background())
	})
}
