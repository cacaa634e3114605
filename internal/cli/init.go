package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/databeans/internal/logger"
	"github.com/mesh-intelligence/databeans/pkg/tag"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	LogLevel     string `yaml:"log_level"`
	LogJSON      bool   `yaml:"log_json"`
	DefaultScope string `yaml:"default_scope,omitempty"`
}

func newInitCmd() *cobra.Command {
	var defaultScope string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and config.yaml",
		Long: "Create the configuration directory and write a default config.yaml.\n" +
			"An existing config.yaml is left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, defaultScope)
		},
	}
	cmd.Flags().StringVar(&defaultScope, "default-scope", "", "scope used by tag commands when --scope is omitted")
	return cmd
}

func runInit(cmd *cobra.Command, defaultScope string) error {
	if defaultScope != "" {
		if _, err := tag.ParseScope(defaultScope); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(errors.Wrap(err, "create config directory"))
	}

	path := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(path, configFile{
		LogLevel:     logger.DefaultLevel,
		DefaultScope: defaultScope,
	})
	if err != nil {
		return sysError(errors.Wrap(err, "write config"))
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml unless it already exists and
// reports whether it wrote the file.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, errors.Wrap(err, "marshal config")
	}
	header := []byte("# beans CLI configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
