package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/layerkit/layerkit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyBaseDir     = "base_dir"
	KeyCreateFiles = "create_files"
	KeyLayout      = "layout"
	KeyLogFormat   = "log_format"
)

// Settings is the resolved configuration for a scaffold run.
type Settings struct {
	BaseDir     string
	CreateFiles bool
	LayoutFile  string
	LogFormat   string
}

// Dir returns the config directory. LAYERKIT_HOME overrides ~/.layerkit.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyBaseDir, "")
	viper.SetDefault(KeyCreateFiles, false)
	viper.SetDefault(KeyLayout, "")
	viper.SetDefault(KeyLogFormat, "console")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Reset clears all loaded settings and flag bindings.
func Reset() {
	viper.Reset()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Resolve returns the typed settings for a scaffold run.
func Resolve() Settings {
	return Settings{
		BaseDir:     viper.GetString(KeyBaseDir),
		CreateFiles: viper.GetBool(KeyCreateFiles),
		LayoutFile:  viper.GetString(KeyLayout),
		LogFormat:   viper.GetString(KeyLogFormat),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
