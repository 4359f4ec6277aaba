/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config resolves localeprobe settings from flags, the environment
// and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/jplu/lingo/internal/logger"
)

// EnvPrefix prefixes the environment variables, e.g. LOCALEPROBE_DEBUG.
const EnvPrefix = "LOCALEPROBE"

// Keys of the settings. Flags use the same names.
const (
	KeyDebug       = "debug"
	KeyLogFormat   = "log-format"
	KeyOldISOCodes = "old-iso-codes"
	KeyCatalog     = "catalog"
	KeyDisplay     = "display"
	KeyConfigFile  = "config"
)

// ErrInvalid is returned for settings that do not validate.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Debug       bool
	LogFormat   string
	OldISOCodes bool
	// Catalog is the path of the catalog run by check. Empty means the
	// embedded one.
	Catalog string
	// Display is the language display names are written in.
	Display language.Tag
}

// New returns a viper instance reading LOCALEPROBE_* variables, with the
// defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFormat, logger.FormatAuto)
	v.SetDefault(KeyOldISOCodes, false)
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyDisplay, "en")
	return v
}

// Bind makes the flags of fs override the environment and the config file.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// Load reads the config file named by the "config" setting, if any, and
// returns the resolved settings.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Debug:       v.GetBool(KeyDebug),
		LogFormat:   strings.ToLower(v.GetString(KeyLogFormat)),
		OldISOCodes: v.GetBool(KeyOldISOCodes),
		Catalog:     v.GetString(KeyCatalog),
	}
	switch cfg.LogFormat {
	case logger.FormatAuto, logger.FormatText, logger.FormatJSON:
	default:
		return Config{}, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogFormat, cfg.LogFormat)
	}
	display, err := language.Parse(v.GetString(KeyDisplay))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, KeyDisplay, err)
	}
	cfg.Display = display
	return cfg, nil
}
