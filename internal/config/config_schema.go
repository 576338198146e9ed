package config

// SchemaConfig holds schema definition configuration
type SchemaConfig struct {
	Dir            string `env:"DIR" envDefault:"schema"`
	DefaultVersion string `env:"VERSION" envDefault:"1"`
}
