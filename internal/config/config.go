package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Lookup  LookupConfig  `yaml:"lookup" mapstructure:"lookup"`
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Rings   RingsConfig   `yaml:"rings" mapstructure:"rings"`
	Label   LabelConfig   `yaml:"label" mapstructure:"label"`
	Export  ExportConfig  `yaml:"export" mapstructure:"export"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// LookupConfig selects the LPB lookup resource. An empty path uses the
// bundled table.
type LookupConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// CatalogConfig selects the subject category catalog. An empty path uses
// the bundled catalog.
type CatalogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// RingsConfig sets ring fidelity for on-screen rendering and for export.
type RingsConfig struct {
	RenderSteps int `yaml:"render_steps" mapstructure:"render_steps"`
	ExportSteps int `yaml:"export_steps" mapstructure:"export_steps"`
}

// LabelConfig configures ring label formatting.
type LabelConfig struct {
	Locale string `yaml:"locale" mapstructure:"locale"`
}

// ExportConfig configures where exports are written.
type ExportConfig struct {
	Dir    string `yaml:"dir" mapstructure:"dir"`
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Supported export formats.
const (
	FormatGeoJSON   = "geojson"
	FormatShapefile = "shapefile"
	FormatStdout    = "stdout"
)

// Load reads configuration from file and environment. A .env file in the
// working directory, if present, seeds the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, eris.Wrap(err, "config: read .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AUTOSAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("lookup.path", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("rings.render_steps", 360)
	v.SetDefault("rings.export_steps", 64)
	v.SetDefault("label.locale", "en-US")
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.format", FormatGeoJSON)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	if c.Rings.RenderSteps < 3 {
		return eris.Errorf("config: rings.render_steps must be at least 3, got %d", c.Rings.RenderSteps)
	}
	if c.Rings.ExportSteps < 3 {
		return eris.Errorf("config: rings.export_steps must be at least 3, got %d", c.Rings.ExportSteps)
	}
	switch c.Export.Format {
	case FormatGeoJSON, FormatShapefile, FormatStdout:
	default:
		return eris.Errorf("config: unknown export.format %q", c.Export.Format)
	}
	return nil
}

func loggerConfig(cfg LogConfig) (zap.Config, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		// Warn is used for lookup misses; no stack traces.
		zapCfg.DisableStacktrace = true
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	// Command output goes to stdout; keep logs off it.
	zapCfg.OutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)
	return zapCfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	zapCfg, err := loggerConfig(cfg)
	if err != nil {
		return err
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
