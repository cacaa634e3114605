// Package cli implements the beans command-line interface.
package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/databeans/internal/document"
	"github.com/mesh-intelligence/databeans/internal/logger"
	"github.com/mesh-intelligence/databeans/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	logLevel  string
	noColor   bool
}

var (
	flags rootFlags

	// Set by setup before any subcommand runs.
	configDir string
	cfg       *viper.Viper

	closeLogger = func() {}
)

// NewRootCmd creates the top-level "beans" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "beans",
		Short: "Inspect bean schemas and manage scoped tags",
		Long: "Beans loads property schemas, evaluates property paths against bean\n" +
			"instances, and edits the scoped tags of JSON documents.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newNewCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newTagsCmd())
	root.AddCommand(newKeywordsCmd())
	root.AddCommand(newLabelCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	closeLogger()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// setup resolves the config directory, loads config.yaml, and installs the
// logger.
func setup(cmd *cobra.Command, args []string) error {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(errors.Wrap(err, "resolving config directory"))
	}
	v, err := loadConfig(dir)
	if err != nil {
		return sysError(err)
	}
	configDir, cfg = dir, v

	level := flags.logLevel
	if level == "" {
		level = v.GetString(cfgKeyLogLevel)
	}
	closeLogger()
	closeLogger = func() {}
	restore, err := logger.Initialize(level, v.GetBool(cfgKeyLogJSON))
	if err != nil {
		return err
	}
	closeLogger = restore

	if flags.noColor || flags.jsonMode {
		pterm.DisableStyling()
	}
	return nil
}

// sysErr marks failures of the environment rather than of the input.
type sysErr struct{ cause error }

func (e *sysErr) Error() string { return e.cause.Error() }
func (e *sysErr) Unwrap() error { return e.cause }

func sysError(err error) error { return &sysErr{cause: err} }

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysErr
	if errors.As(err, &se) || errors.Is(err, document.ErrWriteFailed) {
		return exitSysError
	}
	return exitUserError
}
