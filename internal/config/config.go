package config

import (
	"fmt"
	"strings"
)

// Config holds all configuration for aping
type Config struct {
	Destination string
	Inverse     bool
	ReportDir   string
	Debug       bool
}

// Validate checks if the configuration is valid. The destination itself is
// left for the ping utility to judge.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Destination) == "" {
		return fmt.Errorf("destination must be specified")
	}
	return nil
}
