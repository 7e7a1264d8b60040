// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves jpg2pdf settings from flags, environment
// variables (JPG2PDF_*) and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/jpg2pdf/pkg/types"
)

const (
	// AppName names the config file and the XDG config subdirectory.
	AppName = "jpg2pdf"

	// EnvPrefix prefixes environment overrides, e.g. JPG2PDF_LOG_LEVEL.
	EnvPrefix = "JPG2PDF"

	KeyOutput   = "output"
	KeyLogLevel = "log_level"
)

// Dir returns the XDG config directory searched for jpg2pdf.yaml.
// On Linux: ~/.config/jpg2pdf
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// New returns a viper instance with defaults, the search path and the
// environment prefix set. cfgFile, when non-empty, replaces the search.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, string(types.LogWarn))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Bind ties the command-line flags to their config keys so an explicitly
// set flag wins over env and file values. Missing flags are skipped.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		KeyOutput:   "output",
		KeyLogLevel: "log-level",
	} {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Read loads the config file if one is found. A missing file in the search
// path is not an error; a missing or malformed explicit file is. It returns
// the path of the file used, or "".
func Read(v *viper.Viper) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Combine builds the run configuration for folder from v.
func Combine(v *viper.Viper, folder string, dryRun bool) types.CombineConfig {
	return types.CombineConfig{
		Folder:     folder,
		Output:     v.GetString(KeyOutput),
		Resolution: types.DefaultResolution,
		DryRun:     dryRun,
		LogLevel:   types.LogLevel(v.GetString(KeyLogLevel)),
	}
}
