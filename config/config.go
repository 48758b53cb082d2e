package config

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/schemagen/dialect"
	"gorm.io/schemagen/generator"
	"gorm.io/schemagen/logger"
	"gorm.io/schemagen/schema"
)

// EnvPrefix prefix of environment variables overriding the config file,
// e.g. SCHEMAGEN_NAMING_TABLE_PREFIX
const EnvPrefix = "SCHEMAGEN"

// Config schemagen tool config
type Config struct {
	// Platform target database, see dialect.NewDialect
	Platform string `json:"platform" mapstructure:"platform"`
	Naming   Naming `json:"naming" mapstructure:"naming"`
	Log      Log    `json:"log" mapstructure:"log"`
}

// Naming default table and constraint names
type Naming struct {
	TablePrefix         string `json:"table_prefix" mapstructure:"table_prefix"`
	SingularTable       bool   `json:"singular_table" mapstructure:"singular_table"`
	UpperCase           bool   `json:"upper_case" mapstructure:"upper_case"`
	IdentifierMaxLength int    `json:"identifier_max_length" mapstructure:"identifier_max_length"`
}

// Log diagnostics output
type Log struct {
	// Level silent, error, warn or info
	Level string `json:"level" mapstructure:"level"`
	// Format default, zap, zerolog, logrus or slog
	Format   string `json:"format" mapstructure:"format"`
	Colorful bool   `json:"colorful" mapstructure:"colorful"`
}

func DefaultConfig() *Config {
	return &Config{
		Platform: "generic",
		Naming: Naming{
			IdentifierMaxLength: 64,
		},
		Log: Log{
			Level:  "warn",
			Format: "default",
		},
	}
}

// Load read the config file at path, an empty path reads the environment
// only
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("platform", defaults.Platform)
	v.SetDefault("naming.table_prefix", defaults.Naming.TablePrefix)
	v.SetDefault("naming.singular_table", defaults.Naming.SingularTable)
	v.SetDefault("naming.upper_case", defaults.Naming.UpperCase)
	v.SetDefault("naming.identifier_max_length", defaults.Naming.IdentifierMaxLength)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.colorful", defaults.Log.Colorful)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return config, nil
}

// NamingStrategy naming strategy of the config
func (c *Config) NamingStrategy() schema.NamingStrategy {
	return schema.NamingStrategy{
		TablePrefix:         c.Naming.TablePrefix,
		SingularTable:       c.Naming.SingularTable,
		UpperCase:           c.Naming.UpperCase,
		IdentifierMaxLength: c.Naming.IdentifierMaxLength,
	}
}

// Logger logger of the config writing to w
func (c *Config) Logger(w io.Writer) (logger.Interface, error) {
	level, ok := logger.ParseLevel(c.Log.Level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	cfg := logger.Config{LogLevel: level, Colorful: c.Log.Colorful}

	switch strings.ToLower(c.Log.Format) {
	case "", "default", "text":
		return logger.New(log.New(w, "\r\n", log.LstdFlags), cfg), nil
	case "zap":
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(w), logger.ZapLevel(level))
		return logger.NewZapLogger(zap.New(core), cfg), nil
	case "zerolog":
		return logger.NewZerologLogger(zerolog.New(w).Level(logger.ZerologLevel(level)).With().Timestamp().Logger(), cfg), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.DebugLevel)
		return logger.NewLogrusLogger(l, cfg), nil
	case "slog":
		return logger.NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), nil
	}
	return nil, fmt.Errorf("unknown log format %q", c.Log.Format)
}

// Options generator options of the config, diagnostics are written to w
func (c *Config) Options(w io.Writer) ([]generator.ConfigOption, error) {
	platform, err := dialect.NewDialect(c.Platform)
	if err != nil {
		return nil, err
	}

	l, err := c.Logger(w)
	if err != nil {
		return nil, err
	}

	return []generator.ConfigOption{
		generator.WithPlatform(platform),
		generator.WithNamer(c.NamingStrategy()),
		generator.WithLogger(l),
	}, nil
}
