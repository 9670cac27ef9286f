// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds the settings of the local play server. Command-line flags
// override whatever is read here.
type Server struct {
	Addr string `env:"XIANGQI_ADDR" envDefault:":2888"`
	// WebDir 为空时用内置的记谱页面
	WebDir      string `env:"XIANGQI_WEB_DIR"`
	OpenBrowser bool   `env:"XIANGQI_OPEN_BROWSER" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer returns the server settings from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}
