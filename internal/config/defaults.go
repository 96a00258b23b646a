package config

import "time"

// DefaultConfig returns a Config populated with defaults
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		ServerAddr:  ":8080",
		DataPath:    "data/portfolio.json",
		StaticPath:  "static",
		Title:       "Portfolio",
		GitHub: GitHubConfig{
			User:      "tahiru0",
			APIBase:   "https://api.github.com",
			UserAgent: "Portfolio-App/1.0",
			CacheTTL:  time.Hour,
			Timeout:   10 * time.Second,
			PageWait:  2 * time.Second,
		},
		Layout: LayoutConfig{
			DefaultViewportWidth: 1280,
			MaxSessions:          256,
		},
	}
}
