package config

// Overrides holds command-line values that take priority over the config file.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	Debug    bool
	NoCache  bool
	CacheDir string
	LogFile  string
}

// applyOverrides applies CLI overrides to the config.
func applyOverrides(cfg *Config, o Overrides) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.NoCache {
		cfg.Cache.Enabled = false
	}
	if o.CacheDir != "" {
		cfg.Cache.Dir = o.CacheDir
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
}
