package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/holiday-engine/config"
	_ "github.com/warp/holiday-engine/countries"
	"github.com/warp/holiday-engine/factory"
	"github.com/warp/holiday-engine/generic"
	"github.com/warp/holiday-engine/store/sqlite"
)

const (
	usage      = "holidays"
	short      = "Public holiday calendars"
	long       = "Query public holiday calendars for one or more countries, or serve them over HTTP."
	configDesc = "set the path for the YAML configuration file"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	envFile    string
	countries  []string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

// Execute builds the command tree and executes commands.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	c := &cobra.Command{
		Use:           usage,
		Short:         short,
		Long:          long,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(); err != nil {
				return err
			}
			// Arguments parsed fine; failures from here on are not usage errors.
			cmd.SilenceUsage = true
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := c.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", config.DefaultPath, configDesc)
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with HOLIDAYS_* overrides")
	flags.StringArrayVar(&a.countries, "country", nil, `calendar jurisdiction, "CC" or "CC-SUB"; repeat for a composite`)
	flags.StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	c.AddCommand(newServeCmd(a))
	c.AddCommand(newCheckCmd(a))
	c.AddCommand(newListCmd(a))
	c.AddCommand(newJurisdictionsCmd(a))
	return c
}

// load resolves the configuration and builds the logger.
func (a *app) load() error {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if len(a.countries) > 0 {
		cfg.Calendar.Jurisdictions = factory.JurisdictionsFromCodes(a.countries)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("loaded configuration",
		zap.String("path", a.configPath),
		zap.String("database", cfg.Database),
		zap.Int("jurisdictions", len(cfg.Calendar.Jurisdictions)))
	return nil
}

// calendar builds the configured calendar and, when the configured
// database already exists, applies its custom holidays for years.
func (a *app) calendar(ctx context.Context, years ...int) (*generic.HolidaySet, error) {
	set, err := factory.NewCalendarFactory(a.logger).Build(a.cfg.Calendar)
	if err != nil {
		return nil, err
	}
	for _, year := range years {
		set.Expand(year)
	}

	if a.cfg.Database == ":memory:" {
		return set, nil
	}
	if _, err := os.Stat(a.cfg.Database); err != nil {
		a.logger.Debug("no custom holiday database", zap.String("path", a.cfg.Database))
		return set, nil
	}

	store, err := sqlite.New(a.cfg.Database, a.logger)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	for _, year := range years {
		if err := generic.LoadCustomHolidays(ctx, store, set, year); err != nil {
			return nil, err
		}
	}
	return set, nil
}
