package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/output"
)

func sensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity [input-file]",
		Short: "Sweep one loan input and show how cost and payoff respond",
		Long: `Vary a single loan parameter across a range and report payoff time, payment,
interest and total cost at each point.

Parameters: extra_payment (dollars), interest_rate (percent), term_years (years),
down_payment (dollars).

Example:
  mortgo sensitivity loan.yaml --param extra_payment --min 0 --max 1000 --steps 11`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loan, err := loadLoan(args)
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("param")
			minRaw, _ := cmd.Flags().GetString("min")
			maxRaw, _ := cmd.Flags().GetString("max")
			steps, _ := cmd.Flags().GetInt("steps")

			minValue, err := decimal.NewFromString(minRaw)
			if err != nil {
				return fmt.Errorf("invalid --min %q: %w", minRaw, err)
			}
			maxValue, err := decimal.NewFromString(maxRaw)
			if err != nil {
				return fmt.Errorf("invalid --max %q: %w", maxRaw, err)
			}

			analyzer := calculation.NewSensitivityAnalyzer(newEngine(cmd))
			analysis, err := analyzer.AnalyzeParameter(cmd.Context(), *loan, domain.SensitivityParameter{
				Name:     name,
				MinValue: minValue,
				MaxValue: maxValue,
				Steps:    steps,
				Unit:     domain.UnitForParameter(name),
			})
			if err != nil {
				return fmt.Errorf("sensitivity analysis failed: %w", err)
			}

			out, err := output.NewSensitivityFormatter(formatFlag(cmd, "console")).FormatSensitivityAnalysis(analysis)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("param", domain.ParamExtraPayment, "Parameter to vary (extra_payment, interest_rate, term_years, down_payment)")
	cmd.Flags().String("min", "0", "Minimum parameter value")
	cmd.Flags().String("max", "1000", "Maximum parameter value")
	cmd.Flags().Int("steps", 11, "Number of points in the sweep")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}
