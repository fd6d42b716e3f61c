// Package cli wires the ghadmin subcommands to configuration, logging and the GitHub client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/config"
	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/store"
)

const (
	applicationName      = "ghadmin"
	applicationShort     = "GitHub organization administration bots"
	configFileFlagName   = "config"
	configFileFlagUsage  = "Optional path to a configuration file (YAML)."
	logLevelFlagName     = "log-level"
	logLevelFlagUsage    = "Override the configured log level (debug, info, warn or error)."
	logFormatFlagName    = "log-format"
	logFormatFlagUsage   = "Override the configured log format (structured or console)."
	configurationLoadErr = "unable to load configuration: %w"
	loggerCreationErr    = "unable to create logger: %w"
	loggerSyncErr        = "unable to flush logger: %w"
)

// Application holds what the subcommands share: settings, logger, output and the way to
// reach GitHub.
type Application struct {
	rootCommand *cobra.Command
	settings    config.Settings
	configFile  string
	logLevel    string
	logFormat   string
	logger      *zap.Logger

	out io.Writer
	in  io.Reader

	loadSecrets func() (*config.Config, error)
	newClient   func(token string) github.Client
}

// NewApplication assembles the command tree. Reports go to out; prompts read from in.
func NewApplication(out io.Writer, in io.Reader) *Application {
	app := &Application{
		logger:      zap.NewNop(),
		out:         out,
		in:          in,
		loadSecrets: config.Load,
		newClient:   github.New,
	}

	root := &cobra.Command{
		Use:           applicationName,
		Short:         applicationShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.initialize(cmd)
		},
	}
	root.SetOut(out)
	root.SetIn(in)
	root.PersistentFlags().StringVar(&app.configFile, configFileFlagName, "", configFileFlagUsage)
	root.PersistentFlags().StringVar(&app.logLevel, logLevelFlagName, "", logLevelFlagUsage)
	root.PersistentFlags().StringVar(&app.logFormat, logFormatFlagName, "", logFormatFlagUsage)

	root.AddCommand(
		app.newCoCCommand(),
		app.newTwoFactorCommand(),
		app.newEnforceTwoFactorCommand(),
		app.newMembersCommand(),
		app.newInvitationsCommand(),
		app.newClosePullRequestsCommand(),
		app.newHooksCommand(),
		app.newAuditHooksCommand(),
		app.newOrgInfoCommand(),
		app.newOldReposCommand(),
		app.newRemoveMemberCommand(),
		app.newBillingCommand(),
	)

	app.rootCommand = root
	return app
}

// Execute runs the command line args and flushes the logger.
func (app *Application) Execute(ctx context.Context, args []string) error {
	app.rootCommand.SetArgs(args)
	err := app.rootCommand.ExecuteContext(ctx)
	if syncErr := app.flushLogger(); syncErr != nil && err == nil {
		return fmt.Errorf(loggerSyncErr, syncErr)
	}
	return err
}

// Execute runs ghadmin with the process arguments.
func Execute(ctx context.Context) error {
	return NewApplication(os.Stdout, os.Stdin).Execute(ctx, os.Args[1:])
}

func (app *Application) initialize(cmd *cobra.Command) error {
	settings, used, err := config.LoadSettings(app.configFile)
	if err != nil {
		return fmt.Errorf(configurationLoadErr, err)
	}
	if flagChanged(cmd, logLevelFlagName) {
		settings.Common.LogLevel = app.logLevel
	}
	if flagChanged(cmd, logFormatFlagName) {
		settings.Common.LogFormat = app.logFormat
	}

	logger, err := config.NewLogger(config.LogLevel(settings.Common.LogLevel), config.LogFormat(settings.Common.LogFormat))
	if err != nil {
		return fmt.Errorf(loggerCreationErr, err)
	}

	app.settings = settings
	app.logger = logger
	app.logger.Debug("configuration initialized",
		zap.String("command", cmd.Name()),
		zap.String("config_file", used),
		zap.String("log_level", settings.Common.LogLevel),
	)
	return nil
}

// client builds a GitHub client from the token in the environment or credentials file.
func (app *Application) client() (github.Client, error) {
	secrets, err := app.loadSecrets()
	if err != nil {
		return nil, fmt.Errorf("loading secrets: %w", err)
	}
	token, err := secrets.Token()
	if err != nil {
		return nil, err
	}
	return app.newClient(token), nil
}

func (app *Application) openCache() (*store.Store, error) {
	return store.Open(app.settings.Cache.Path)
}

func (app *Application) closeCache(cache *store.Store) {
	if err := cache.Close(); err != nil {
		app.logger.Warn("closing cache", zap.String("path", app.settings.Cache.Path), zap.Error(err))
	}
}

func (app *Application) printer() *report.Printer {
	return report.New(app.out)
}

func (app *Application) flushLogger() error {
	err := app.logger.Sync()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, syscall.ENOTSUP), errors.Is(err, syscall.EINVAL):
		return nil
	default:
		return err
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags(), cmd.Root().PersistentFlags()} {
		if flags != nil && flags.Changed(name) {
			return true
		}
	}
	return false
}
