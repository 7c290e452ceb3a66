// Package config holds the setting registry and loads it into viper from defaults, env and the config file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/comicrawl/comicrawl/constant"
	"github.com/comicrawl/comicrawl/filesystem"
	"github.com/comicrawl/comicrawl/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to env variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

const fileType = "toml"

// File returns the path of the config file, whether or not it exists.
func File() string {
	return filepath.Join(where.Config(), constant.App+"."+fileType)
}

// Setup loads defaults, env bindings and the config file, then validates every key.
// A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType(fileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read %s: %w", File(), err)
		}
	}

	return validateAll()
}

// Save writes the current settings to File, creating it when missing.
func Save() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Keys returns every registered key in sorted order.
func Keys() []string {
	keys := lo.Keys(Default)
	slices.Sort(keys)
	return keys
}

func validateAll() error {
	var errs []error
	for _, k := range Keys() {
		if err := Validate(k, viper.Get(k)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
