package config

// SourceConfig holds source tree configuration for the entries loader
type SourceConfig struct {
	Dir    string `env:"DIR" envDefault:"data"`
	Locale string `env:"LOCALE" envDefault:"en"`
}
