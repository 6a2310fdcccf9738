package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/config"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// settings holds the environment defaults; loaded before any subcommand runs.
var settings = config.Settings{Format: "console"}

func newCLILogger(w io.Writer) calculation.Logger {
	return calculation.NewStdLogger(log.New(w, "", log.LstdFlags))
}

// newEngine builds an engine, wiring the debug logger when requested by flag or environment.
func newEngine(cmd *cobra.Command) *calculation.AmortizationEngine {
	engine := calculation.NewAmortizationEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode || settings.Debug {
		engine.SetLogger(newCLILogger(cmd.ErrOrStderr()))
		engine.Debug = true
	}
	return engine
}

// formatFlag returns the --format value, falling back to MORTGO_FORMAT when the flag was not given.
func formatFlag(cmd *cobra.Command, fallback string) string {
	format, _ := cmd.Flags().GetString("format")
	if cmd.Flags().Changed("format") {
		return format
	}
	if settings.Format != "" {
		return settings.Format
	}
	return fallback
}

// loadLoan reads the loan file named by args, then MORTGO_CONFIG, else returns the default loan.
func loadLoan(args []string) (*domain.LoanConfig, error) {
	path := settings.ConfigFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		cfg := domain.DefaultLoanConfig()
		return &cfg, nil
	}
	return config.NewInputParser().LoadFromFile(path)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mortgo %s (commit %s, built %s)\n", version, commit, date)
			verbose, _ := cmd.Flags().GetBool("verbose")
			if info := buildInfo(); verbose && info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mortgo",
		Short: "Mortgage amortization calculator CLI",
		Long: `Fixed-rate mortgage calculator: amortization schedules, extra payment impact,
scenario comparison, payoff targets and sensitivity sweeps.

Without an input file the default loan is used ($450,000 home, $50,000 down, 6% over 30 years).
Environment: MORTGO_FORMAT, MORTGO_DEBUG and MORTGO_CONFIG set defaults; flags take precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings()
			if err != nil {
				return err
			}
			settings = s
			return nil
		},
	}

	versionCommand := versionCmd()
	versionCommand.Flags().BoolP("verbose", "v", false, "Include module build information")

	root.AddCommand(
		calculateCmd(),
		validateCmd(),
		compareCmd(),
		payoffCmd(),
		sensitivityCmd(),
		versionCommand,
	)
	return root
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate the amortization schedule for a loan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loan, err := loadLoan(args)
			if err != nil {
				return err
			}
			if err := applyOverrides(cmd, loan); err != nil {
				return err
			}
			if path, _ := cmd.Flags().GetString("save-config"); path != "" {
				if err := config.NewInputParser().SaveToFile(path, loan); err != nil {
					return fmt.Errorf("failed to save configuration: %w", err)
				}
			}

			report, err := newEngine(cmd).BuildReport(*loan)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}

			format := formatFlag(cmd, "console")
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				dir, _ := cmd.Flags().GetString("output-dir")
				filename, err := output.WriteFormatted(formatter, report, dir, output.Extension(formatter.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringP("format", "f", "console", "Output format (console, schedule, csv, schedule-csv, yearly-csv, json, yaml, html)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	cmd.Flags().String("output-dir", ".", "Directory for --save")
	cmd.Flags().String("save-config", "", "Write the loan, with overrides applied, to this YAML file")
	cmd.Flags().String("home-value", "", "Override the home value")
	cmd.Flags().String("down-payment", "", "Override the down payment")
	cmd.Flags().String("rate", "", "Override the annual interest rate percent (6.5 = 6.5%)")
	cmd.Flags().Int("term", 0, "Override the loan term in years")
	cmd.Flags().String("extra", "", "Override the additional monthly principal payment")
	cmd.Flags().String("other-costs", "", "Replace monthly costs with a single flat amount")
	return cmd
}

// applyOverrides replaces loan fields with any override flags given on the command line.
func applyOverrides(cmd *cobra.Command, loan *domain.LoanConfig) error {
	money := []struct {
		flag string
		dst  *decimal.Decimal
	}{
		{"home-value", &loan.HomeValue},
		{"down-payment", &loan.DownPayment},
		{"rate", &loan.AnnualInterestRatePercent},
		{"extra", &loan.AdditionalMonthlyPayment},
	}
	for _, m := range money {
		if !cmd.Flags().Changed(m.flag) {
			continue
		}
		raw, _ := cmd.Flags().GetString(m.flag)
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid --%s %q: %w", m.flag, raw, err)
		}
		*m.dst = v
	}

	if cmd.Flags().Changed("other-costs") {
		raw, _ := cmd.Flags().GetString("other-costs")
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid --other-costs %q: %w", raw, err)
		}
		loan.MonthlyCosts = domain.FlatMonthlyCosts(v)
	}
	if cmd.Flags().Changed("term") {
		loan.LoanTermYears, _ = cmd.Flags().GetInt("term")
	}

	if err := config.NewInputParser().ValidateConfiguration(loan); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Validate a loan configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loan, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "  Loan amount: %s at %s%% over %d years\n",
				output.FormatCurrency(loan.LoanAmount()),
				loan.AnnualInterestRatePercent.StringFixed(2),
				loan.LoanTermYears)
			return nil
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
