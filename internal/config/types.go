package config

import "time"

// Config holds all application configuration
type Config struct {
	Environment string       `yaml:"environment" koanf:"environment"`
	ServerAddr  string       `yaml:"server_addr" koanf:"server_addr"`
	DataPath    string       `yaml:"data_path" koanf:"data_path"`
	StaticPath  string       `yaml:"static_path" koanf:"static_path"`
	Title       string       `yaml:"title" koanf:"title"`
	CORSOrigins []string     `yaml:"cors_origins" koanf:"cors_origins"`
	GitHub      GitHubConfig `yaml:"github" koanf:"github"`
	Layout      LayoutConfig `yaml:"layout" koanf:"layout"`
}

// GitHubConfig controls the profile fetch
type GitHubConfig struct {
	User      string        `yaml:"user" koanf:"user"`
	APIBase   string        `yaml:"api_base" koanf:"api_base"`
	UserAgent string        `yaml:"user_agent" koanf:"user_agent"`
	CacheTTL  time.Duration `yaml:"cache_ttl" koanf:"cache_ttl"`
	Timeout   time.Duration `yaml:"timeout" koanf:"timeout"`
	// PageWait is how long a page request waits for the profile before
	// rendering the loading state
	PageWait time.Duration `yaml:"page_wait" koanf:"page_wait"`
}

// LayoutConfig holds the grid session settings
type LayoutConfig struct {
	DefaultViewportWidth float64 `yaml:"default_viewport_width" koanf:"default_viewport_width"`
	MaxSessions          int     `yaml:"max_sessions" koanf:"max_sessions"`
}

// IsProduction reports whether the server runs with production logging
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
