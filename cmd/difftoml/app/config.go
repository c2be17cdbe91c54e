package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/configtools/difftoml/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files. Flag values are applied on top
// after cobra parses them.
type Config struct {
	// Diff behavior
	Equal   bool     // report equal entries as well
	Exclude []string // key names skipped at any depth

	// Output
	Color      bool // colorize when writing to a terminal
	ForceColor bool // -c flag: colorize unconditionally
	NoColor    bool // disable colored output even when forced or defaulted on
	Format     string

	// Config file
	ConfigFile string

	// Logging
	Verbose   bool
	Quiet     bool
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by cobra)
// 2. Environment variables (DIFFTOML_*)
// 3. .env files
// 4. Config file (~/.difftoml.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files before viper binds the environment
	loadEnvFiles()

	v := newViper()

	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(".")
			v.SetConfigType("yaml")
			v.SetConfigName(".difftoml")
		}
	}

	// A missing config file is not an error
	_ = v.ReadInConfig()

	return fromViper(v), nil
}

// LoadConfigFromFile loads configuration from an explicit config file,
// as named by the --config flag. Unlike LoadConfig, a missing or
// unreadable file is an error here: the user asked for this file.
// Environment variables still take precedence over the file's values.
func LoadConfigFromFile(path string) (*Config, error) {
	loadEnvFiles()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapConfig("app", "could not read config file "+path, err)
	}

	return fromViper(v), nil
}

// newViper creates a viper instance bound to the DIFFTOML_ environment.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DIFFTOML")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// fromViper builds a Config from bound sources.
func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Equal:   v.GetBool("equal"),
		Exclude: v.GetStringSlice("exclude"),
		Color:   v.GetBool("color"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		LogLevel:  getEnvOrDefault("DIFFTOML_LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("DIFFTOML_LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("DIFFTOML_LOG_OUTPUT", "stderr"),
	}

	if config.Format == "" {
		config.Format = "auto"
	}

	return config
}

// UpdateFromFlags applies parsed command flags on top of the loaded
// configuration, so flags take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(equal, colorize, noColor, verbose, quiet bool, format, logLevel string, exclude []string) {
	if equal {
		c.Equal = true
	}
	if colorize {
		c.ForceColor = true
	}
	if noColor {
		c.NoColor = true
	}
	c.Verbose = verbose
	c.Quiet = quiet
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	// Flag exclusions extend the configured set rather than replacing it
	c.Exclude = append(c.Exclude, exclude...)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
