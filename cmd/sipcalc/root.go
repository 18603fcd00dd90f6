package main

import (
	"github.com/sipcalc/projection-engine/internal/calculation"
	"github.com/sipcalc/projection-engine/internal/config"
	"github.com/sipcalc/projection-engine/internal/domain"
	"github.com/sipcalc/projection-engine/internal/logging"
	"github.com/sipcalc/projection-engine/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand once the persistent
// flags have been applied.
type app struct {
	configPath string
	format     string
	logLevel   string

	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.ProjectionEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sipcalc",
		Short: "Investment projection calculator",
		Long: `sipcalc projects the year-by-year growth of systematic investment plans,
lump sums, systematic withdrawals, inflation-adjusted goals and NPS pensions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a settings YAML file")
	flags.StringVarP(&a.format, "format", "f", "", "output format: console, json, csv, detailed-csv")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newSIPCmd(a),
		newDailySIPCmd(a),
		newLumpSumCmd(a),
		newSWPCmd(a),
		newGoalCmd(a),
		newNPSCmd(a),
		newRetirementCmd(a),
		newRunCmd(a),
	)
	return root
}

func (a *app) setup() error {
	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(settings.Logging, a.logLevel)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	a.engine = calculation.NewProjectionEngineWithAssumptions(settings.Assumptions)
	a.engine.Debug = logger.Core().Enabled(zap.DebugLevel)
	a.engine.SetLogger(logger.Sugar())
	return nil
}

// outputFormat resolves the report format; the flag wins over settings.
func (a *app) outputFormat() string {
	if a.format != "" {
		return a.format
	}
	if a.settings != nil && a.settings.Output.Format != "" {
		return a.settings.Output.Format
	}
	return "console"
}

func (a *app) project(cmd *cobra.Command, p *domain.Portfolio) error {
	a.logger.Debug("running portfolio", zap.String("name", p.Name), zap.String("format", a.outputFormat()))
	report, err := a.engine.RunPortfolio(cmd.Context(), p)
	if err != nil {
		return err
	}
	return output.WriteReport(cmd.OutOrStdout(), report, a.outputFormat())
}
