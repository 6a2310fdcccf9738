package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mortgo/internal/breakeven"
)

func payoffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payoff [input-file]",
		Short: "Solve for the extra monthly payment that meets a payoff goal",
		Long: `Find the smallest additional monthly principal payment that reaches a goal.

Exactly one goal is required:
  --months N            pay the loan off within N months
  --interest-saved X    save at least X in interest against the scheduled loan
  --ladder 10,15,20     solve for each payoff horizon in years and compare`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			goals := 0
			for _, name := range []string{"months", "interest-saved", "ladder"} {
				if flags.Changed(name) {
					goals++
				}
			}
			if goals != 1 {
				return fmt.Errorf("exactly one of --months, --interest-saved or --ladder is required")
			}

			loan, err := loadLoan(args)
			if err != nil {
				return err
			}

			format, _ := flags.GetString("format")
			format = strings.ToLower(format)
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format %q (use table or json)", format)
			}

			solver := breakeven.NewDefaultSolver(newEngine(cmd))

			if flags.Changed("ladder") {
				raw, _ := flags.GetString("ladder")
				horizons, err := parseHorizons(raw)
				if err != nil {
					return err
				}
				ladder, err := solver.OptimizeLadder(cmd.Context(), *loan, horizons)
				if err != nil {
					return err
				}
				var out string
				if format == "json" {
					out, err = (&breakeven.JSONFormatter{Pretty: true}).FormatLadder(ladder)
					if err != nil {
						return err
					}
				} else {
					out = (&breakeven.TableFormatter{}).FormatLadder(ladder)
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			req := breakeven.PayoffRequest{Base: *loan}
			if flags.Changed("months") {
				req.Target = breakeven.TargetPayoffMonths
				req.TargetMonths, _ = flags.GetInt("months")
			} else {
				raw, _ := flags.GetString("interest-saved")
				amount, err := decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid --interest-saved %q: %w", raw, err)
				}
				req.Target = breakeven.TargetInterestSaved
				req.TargetInterestSaved = amount
			}
			if flags.Changed("max-extra") {
				raw, _ := flags.GetString("max-extra")
				limit, err := decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid --max-extra %q: %w", raw, err)
				}
				req.MaxExtraPayment = limit
			}

			result, err := solver.Optimize(cmd.Context(), req)
			if err != nil {
				return err
			}

			var out string
			if format == "json" {
				out, err = (&breakeven.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
			} else {
				out = (&breakeven.TableFormatter{}).Format(result)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Int("months", 0, "Target payoff within this many months")
	cmd.Flags().String("interest-saved", "", "Target interest savings in dollars")
	cmd.Flags().String("ladder", "", "Comma-separated payoff horizons in years")
	cmd.Flags().String("max-extra", "", "Upper bound on the extra monthly payment searched")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}

func parseHorizons(raw string) ([]int, error) {
	var horizons []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		years, err := strconv.Atoi(part)
		if err != nil || years <= 0 {
			return nil, fmt.Errorf("invalid payoff horizon %q: must be a positive number of years", part)
		}
		horizons = append(horizons, years)
	}
	if len(horizons) == 0 {
		return nil, fmt.Errorf("--ladder needs at least one horizon")
	}
	return horizons, nil
}
