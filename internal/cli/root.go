// Package cli implements the cobra-based CLI commands for wxlog.
//
// Each subcommand (log, dates, login, logout) is defined in its own file
// within this package. This file defines the root command that serves as
// the parent for all subcommands, handles global flags and prepares the
// configuration and logger shared by the subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/wxlog/internal/config"
	"github.com/shinji-kodama/wxlog/internal/format"
	"github.com/shinji-kodama/wxlog/internal/logging"
	"github.com/shinji-kodama/wxlog/internal/model"
	"github.com/shinji-kodama/wxlog/internal/wxapi"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose forces debug logging on stderr.
	verbose bool

	// configPath overrides the default config file location.
	configPath string

	// credentialsPath points to a two-line credentials file.
	credentialsPath string

	// noColor disables colored output regardless of configuration.
	noColor bool

	// logFile receives a copy of the log output.
	logFile string
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Runtime state prepared by the root command before any subcommand runs.
var (
	// appConfig is the effective configuration after file, environment
	// and flags were applied.
	appConfig *config.Config

	// closeLog releases the log file, if any.
	closeLog = func() error { return nil }

	// now returns the current time; the default range is "today".
	now = time.Now
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action. It provides help
// text and global flags, and loads the configuration before a subcommand
// runs.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wxlog",
		Short: "Print your workout log from the terminal",
		Long: `wxlog fetches the training journal of your weightxreps account and prints
each day as compact text: the date, your bodyweight, your notes and every
exercise with its sets compressed into short lines such as "100 x 5, 5, 3".

Dates can be given as 2025-05-27, 2025/05/27, 20250527, 2025-05 (a month),
2025 (a year) or as ranges joined by "..", e.g. 2025-05-01..2025-05-07.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepareRuntime(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (.yaml, .toml or .json; default $XDG_CONFIG_HOME/wxlog/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", "",
		"File with your email on the first line and password on the second")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")

	rootCmd.AddCommand(NewLogCommand())
	rootCmd.AddCommand(NewDatesCommand())
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewLogoutCommand())

	return rootCmd
}

// prepareRuntime loads the configuration, applies the global flags on top
// of it and configures the logger.
func prepareRuntime(stderr io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to load configuration", err)
	}

	if credentialsPath != "" {
		username, password, err := config.LoadCredentials(credentialsPath)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError, "failed to load credentials", err)
		}
		cfg.Username, cfg.Password = username, password
	}
	if noColor {
		off := false
		cfg.Color = &off
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	closeLog = logging.Setup(logrus.StandardLogger(), logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
		Verbose:       verbose,
		Stderr:        stderr,
	})
	logrus.WithField("endpoint", cfg.Endpoint).Debug("configuration loaded")

	appConfig = cfg
	return nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", cerr)
	}
	if err == nil {
		return
	}

	if cliErr, ok := err.(*model.CLIError); ok {
		printError(cliErr.Message, cliErr.Err)
		os.Exit(int(cliErr.Code))
	}

	printError(err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// writeJSON prints v as indented JSON.
func writeJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// formatOptions derives the formatter settings from the configuration.
// JSON output is never colored.
func formatOptions(cfg *config.Config) format.Options {
	opts := format.DefaultOptions()
	opts.Color = cfg.ColorEnabled() && !jsonOutput
	opts.BodyweightInPounds = cfg.BodyweightUnit != config.UnitKilograms
	return opts
}

// newSession builds the authenticated API session from the configuration.
// The returned client must be closed by the caller.
func newSession(cfg *config.Config) (*wxapi.Session, *wxapi.Client) {
	logger := logrus.StandardLogger()
	client := wxapi.NewClient(cfg.Endpoint, time.Duration(cfg.Timeout), logger)
	session := wxapi.NewSession(client,
		wxapi.Credentials{Username: cfg.Username, Password: cfg.Password},
		wxapi.TokenCache{Path: cfg.TokenCache},
		logger,
	)
	return session, client
}
