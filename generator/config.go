package generator

import (
	"gorm.io/schemagen/dialect"
	"gorm.io/schemagen/logger"
	"gorm.io/schemagen/schema"
)

// Config generator config
type Config struct {
	// Platform type table columns are resolved against, defaults to dialect.Generic
	Platform schema.Platform
	// Namer names default tables and constraints
	Namer schema.Namer
	// Logger receives non-fatal diagnostics
	Logger logger.Interface
}

// ConfigOption use functional option for generator Config.
type ConfigOption func(c *Config)

// WithPlatform set the target platform.
func WithPlatform(platform schema.Platform) ConfigOption {
	return func(c *Config) {
		c.Platform = platform
	}
}

// WithNamer set the naming strategy.
func WithNamer(namer schema.Namer) ConfigOption {
	return func(c *Config) {
		c.Namer = namer
	}
}

// WithLogger set logger.
func WithLogger(logger logger.Interface) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

func (c *Config) setDefaults() {
	if c.Platform == nil {
		c.Platform = dialect.Generic
	}

	if c.Namer == nil {
		c.Namer = schema.NamingStrategy{}
	}

	if c.Logger == nil {
		c.Logger = logger.Default
	}
}
