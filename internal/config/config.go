package config

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	Application   ApplicationConfig
	Source        SourceConfig        `envPrefix:"SOURCE_"`
	Publish       PublishConfig       `envPrefix:"PUBLISH_"`
	Schema        SchemaConfig        `envPrefix:"SCHEMA_"`
	Elasticsearch ElasticsearchConfig `envPrefix:"ELASTICSEARCH_"`
}
