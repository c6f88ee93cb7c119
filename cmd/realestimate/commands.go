package main

import (
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/realestimate/realestimate/internal/config"
	"github.com/realestimate/realestimate/internal/domain"
	"github.com/realestimate/realestimate/internal/output"
	"github.com/realestimate/realestimate/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCompareCmd(a *app) *cobra.Command {
	var configPath, format, outputDir string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every scenario in a configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			report, err := a.service.RunAll(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), report, format, outputDir)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to scenario configuration (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (see 'formats'); defaults to settings output.format")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write report files to this directory instead of stdout")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newQuickCmd(a *app) *cobra.Command {
	var in config.ScenarioInput
	var format, outputDir string
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Compare a single scenario given on the command line",
		Long: "Compare a single scenario given on the command line.\n" +
			"Amounts may use thousands separators; rates and down payment are percentages (7.92 means 7.92%).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := in.ToScenario()
			if err != nil {
				return err
			}
			sr, err := a.service.Run(cmd.Context(), scenario)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), a.service.Report(*sr), format, outputDir)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "scenario name")
	f.StringVar(&in.StartMonth, "start-month", "", "first payment month (YYYY-MM)")
	f.StringVar(&in.PropertyPrice, "price", "", "property price")
	f.StringVar(&in.DownPaymentPercent, "down-payment", "20", "down payment percentage")
	f.StringVar(&in.FirstPeriodRatePercent, "first-rate", "", "annual interest rate during the fixed period (%)")
	f.StringVar(&in.SubsequentRatePercent, "subsequent-rate", "", "annual interest rate after the fixed period (%)")
	f.StringVar(&in.SubsequentRateMaxPercent, "subsequent-rate-max", "", "upper bound of the subsequent rate (%), enables the range comparison")
	f.StringVar(&in.TermYears, "term", "", "mortgage term in years")
	f.StringVar(&in.FixedPeriodYears, "fixed", "", "fixed-rate period in years")
	f.StringVar(&in.MonthlyRent, "rent", "", "monthly rent")
	f.StringVar(&in.InvestmentReturnPercent, "return", "0", "annual return on invested savings (%)")
	f.StringVarP(&format, "format", "f", "", "output format (see 'formats'); defaults to settings output.format")
	f.StringVarP(&outputDir, "output-dir", "o", "", "write report files to this directory instead of stdout")
	for _, name := range []string{"price", "first-rate", "subsequent-rate", "term", "fixed", "rent"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, out); err != nil {
				return fmt.Errorf("failed to save example configuration: %w", err)
			}
			a.logger.Info("example configuration written", zap.String("op", "example"), zap.String("path", out))
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "example_config.yaml", "destination file")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			fmt.Fprintln(w, "Use \"all\" with --output-dir to write the console, monthly-csv and html reports together.")
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.settings.Server
			if addr != "" {
				cfg.Address = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.NewServer(a.service, a.logger, cfg).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address; defaults to settings server.address")
	return cmd
}

// emit prints text-like formats to w, or writes report files when an output
// directory is given or the format is binary.
func (a *app) emit(w io.Writer, report *domain.ComparisonReport, format, dir string) error {
	if format == "" {
		format = a.settings.Output.Format
	}
	if dir == "" {
		dir = a.settings.Output.Directory
	}
	name := output.NormalizeFormatName(format)
	if dir == "" && name != "all" && name != "pdf" {
		data, err := output.Render(report, name)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	paths, err := output.GenerateReport(report, name, dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		a.logger.Info("report written", zap.String("op", "report"), zap.String("path", p))
		fmt.Fprintf(w, "Report written to %s\n", p)
	}
	return nil
}
