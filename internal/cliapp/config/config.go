// Package config resolves the host's generation configuration: a YAML
// file found via viper's search path, environment overrides under the
// SERVERGEN_ prefix, and a project-local .env loaded first so
// plugin-required env names are already in the process environment by
// the time viper reads it.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	coreconfig "github.com/schemaforge/servergen/internal/core/config"
)

// AppFs is the filesystem the host reads its own config/env files
// through. Swapped for an in-memory afero.Fs in tests.
var AppFs = afero.NewOsFs()

// Load resolves a RawConfig from (in priority order) an explicit
// --config path, ./.servergen.yaml, and $HOME/.servergen.yaml, with
// SERVERGEN_-prefixed environment variables overriding any key.
func Load(explicitPath string) (coreconfig.RawConfig, error) {
	if data, err := afero.ReadFile(AppFs, ".env"); err == nil {
		if envMap, err := godotenv.Unmarshal(string(data)); err == nil {
			for k, v := range envMap {
				if os.Getenv(k) == "" {
					os.Setenv(k, v)
				}
			}
		}
	}

	v := viper.New()
	v.SetFs(AppFs)
	v.SetConfigType("yaml")

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(".servergen")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("SERVERGEN")
	v.AutomaticEnv()

	v.SetDefault("framework", "express")
	v.SetDefault("sdkVersion", "0.1.0")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && explicitPath != "" {
			return coreconfig.RawConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var raw coreconfig.RawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return coreconfig.RawConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	return raw, nil
}
