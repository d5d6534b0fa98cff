// Package config resolves run settings from defaults, an optional settings
// file and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seqpost-core/cds"
)

// Keys match the flag names so BindPFlags lines them up.
const (
	KeyLogLevel      = "log-level"
	KeyCountTemplate = "count-template"
)

type Settings struct {
	LogLevel      string
	CountTemplate string
	ConfigFile    string // file actually read, empty if none
}

// Load reads path when it is non-empty and overlays any flag in fs that was
// set explicitly. Environment variables are not consulted.
func Load(path string, fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCountTemplate, cds.DefaultCountTemplate)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if fs != nil {
		for _, key := range []string{KeyLogLevel, KeyCountTemplate} {
			f := fs.Lookup(key)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Settings{}, err
			}
		}
	}

	return Settings{
		LogLevel:      v.GetString(KeyLogLevel),
		CountTemplate: v.GetString(KeyCountTemplate),
		ConfigFile:    v.ConfigFileUsed(),
	}, nil
}
