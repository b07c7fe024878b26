// Package config handles rocketmesh configuration loading and management.
package config

// Config holds all rocketmesh settings.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Motor   MotorConfig   `yaml:"motor"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// CacheConfig holds mesh cache settings.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // Empty means <user cache dir>/rocketmesh/meshes
}

// MotorConfig holds the fallback dimensions used when the motor model
// does not carry casing or nozzle details.
type MotorConfig struct {
	CasingThickness         float64 `yaml:"casing_thickness"`
	CasingMargin            float64 `yaml:"casing_margin"`
	NozzleConvergenceLength float64 `yaml:"nozzle_convergence_length"`
	NozzleDivergenceLength  float64 `yaml:"nozzle_divergence_length"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Components []string `yaml:"components"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "",
		},
		Motor: MotorConfig{
			CasingThickness:         0.005,
			CasingMargin:            0.1,
			NozzleConvergenceLength: 0.05,
			NozzleDivergenceLength:  0.10,
		},
		Export: ExportConfig{
			Components: []string{"all"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
