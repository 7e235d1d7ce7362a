package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// engineKeys are the viper keys bound to environment variables. A key
// "histogram_bins" binds to DFRAME_HISTOGRAM_BINS, "logging.level" to
// DFRAME_LOGGING_LEVEL, and so on.
var engineKeys = []string{
	"workers",
	"histogram_bins",
	"logging.level",
	"logging.format",
	"logging.output",
	"logging.no_color",
	"logging.timestamp",
	"logging.caller",
}

// Load loads configuration for the named service into cfg. It searches
// for config.yml and .env files in standard locations, binds environment
// variables, and unmarshals the result.
func Load(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst(lc.FileSystem, configSearchPaths(serviceName))
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst(lc.FileSystem, envSearchPaths(serviceName))
	}

	v := viper.New()

	// 1. Load YAML config first (base configuration)
	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("loading config file %s: %w", lc.ConfigFile, err)
		}
	}

	// 2. Load .env into the process environment
	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", lc.EnvFile, err)
		}
	}

	// 3. Bind environment variables; viper needs explicit binds for
	// Unmarshal to see keys absent from the file.
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range engineKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	// 4. Unmarshal into the config struct
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshaling config for service %s: %w", serviceName, err)
	}

	return nil
}

func configSearchPaths(serviceName string) []string {
	return []string{
		fmt.Sprintf("./%s.yml", serviceName),
		"./config/config.yml",
		"./config.yml",
	}
}

func envSearchPaths(serviceName string) []string {
	return []string{
		fmt.Sprintf(".env.%s", serviceName),
		".env",
	}
}

func findFirst(fs FileSystem, paths []string) string {
	for _, p := range paths {
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}
