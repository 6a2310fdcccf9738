package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mortgo/internal/compare"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/transform"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare a loan against alternative scenarios",
		Long: `Compare the base loan against alternatives built from templates or custom transforms.

Templates (--with) are predefined what-ifs such as extra_200 or term_15yr.
Transforms (--transform) take the form name:key=value,... and may be repeated;
each one yields its own alternative.

Examples:
  mortgo compare loan.yaml --with extra_100,extra_500,term_15yr
  mortgo compare --transform add_extra_payment:amount=350 --format json
  mortgo compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := transform.CreateBuiltInTemplates()

			if list, _ := cmd.Flags().GetBool("list-templates"); list {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(templates))
				return nil
			}

			withList, _ := cmd.Flags().GetString("with")
			specs, _ := cmd.Flags().GetStringArray("transform")
			names := transform.ParseTemplateList(withList)
			if len(names) == 0 && len(specs) == 0 {
				return fmt.Errorf("at least one of --with or --transform is required (see --list-templates)")
			}

			loan, err := loadLoan(args)
			if err != nil {
				return err
			}
			baseName, _ := cmd.Flags().GetString("base")

			engine := compare.NewCompareEngine(newEngine(cmd))
			engine.TemplateRegistry = templates

			compSet, err := engine.Compare(cmd.Context(), *loan, compare.CompareOptions{
				BaseScenarioName: baseName,
				Templates:        names,
			})
			if err != nil {
				return err
			}

			if len(specs) > 0 {
				custom, err := customAlternatives(loan, specs)
				if err != nil {
					return err
				}
				if baseName != "" {
					loan.Name = baseName
				}
				extra, err := engine.CompareLoans(cmd.Context(), *loan, custom)
				if err != nil {
					return err
				}
				compSet.AlternativeResults = append(compSet.AlternativeResults, extra.AlternativeResults...)
				compSet.Recommendations = compare.GenerateRecommendations(compSet)
			}

			if len(args) > 0 {
				compSet.ConfigPath = args[0]
			}

			var out string
			switch format, _ := cmd.Flags().GetString("format"); strings.ToLower(format) {
			case "table", "":
				out = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(compSet)
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			default:
				return fmt.Errorf("unsupported format %q (use table, compact, csv or json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("with", "", "Comma-separated template names to compare against")
	cmd.Flags().StringArray("transform", nil, "Custom transform spec name:key=value (repeatable)")
	cmd.Flags().String("base", "", "Display name for the base loan")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List available templates and exit")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}

// customAlternatives applies each transform spec to the base loan.
func customAlternatives(base *domain.LoanConfig, specs []string) ([]domain.LoanConfig, error) {
	registry := transform.NewTransformRegistry()
	alternatives := make([]domain.LoanConfig, 0, len(specs))
	for _, spec := range specs {
		t, err := registry.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		modified, err := t.Apply(base)
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", spec, err)
		}
		modified.Name = t.Name()
		alternatives = append(alternatives, *modified)
	}
	return alternatives, nil
}
