package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/databeans/internal/logger"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Every key may also be set through the environment as BEANS_<KEY>.
	envPrefix = "BEANS"

	cfgKeyLogLevel     = "log_level"
	cfgKeyLogJSON      = "log_json"
	cfgKeyDefaultScope = "default_scope"
)

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error; the defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, logger.DefaultLevel)
	v.SetDefault(cfgKeyLogJSON, false)
	v.SetDefault(cfgKeyDefaultScope, "")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	return v, nil
}

// scopeOrDefault returns scope, falling back to the configured default.
func scopeOrDefault(scope string) string {
	if scope != "" || cfg == nil {
		return scope
	}
	return cfg.GetString(cfgKeyDefaultScope)
}
