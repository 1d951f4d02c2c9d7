package odfmark

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all configuration options for the editing pipeline.
type Config struct {
	// ConverterPath is the document converter executable. Empty means
	// "soffice" looked up on PATH.
	ConverterPath string
	// ConvertTo is the converter's output filter, e.g. "pdf:writer_pdf_Export".
	ConvertTo string
	// OutDir is where converted output lands. Empty means next to the
	// output container.
	OutDir string
	// LogLevel controls the verbosity of logging (debug, info, warn, error).
	LogLevel string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ConvertTo: "pdf:writer_pdf_Export",
		LogLevel:  "info",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}
	if c.ConvertTo == "" {
		return errors.New("convert_to must not be empty")
	}
	return nil
}

// LoadConfig loads configuration from defaults, an optional config file,
// and ODFMARK_* environment variables, in increasing precedence. cfgFile
// overrides the default search path ($XDG_CONFIG_HOME/odfmark/config.toml);
// a missing config file is not an error.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("converter.path", defaults.ConverterPath)
	v.SetDefault("converter.convert_to", defaults.ConvertTo)
	v.SetDefault("converter.out_dir", defaults.OutDir)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("ODFMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{
		ConverterPath: v.GetString("converter.path"),
		ConvertTo:     v.GetString("converter.convert_to"),
		OutDir:        v.GetString("converter.out_dir"),
		LogLevel:      v.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "odfmark"), nil
}
