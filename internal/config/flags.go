package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagKeys maps command-line flag names to setting keys.
var FlagKeys = map[string]string{
	"base-dir":   KeyBaseDir,
	"files":      KeyCreateFiles,
	"layout":     KeyLayout,
	"log-format": KeyLogFormat,
}

// BindFlags binds every flag in fs that has a matching setting key. Flags
// not present in fs are ignored.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// IsKnownKey reports whether key is a setting this tool reads.
func IsKnownKey(key string) bool {
	for _, k := range FlagKeys {
		if k == key {
			return true
		}
	}
	return false
}
