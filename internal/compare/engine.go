package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/transform"
)

// CompareEngine orchestrates loan scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.AmortizationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.AmortizationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewAmortizationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Display name of the base loan
	Templates        []string // List of template names to apply
}

// Compare evaluates the base loan and one alternative per template
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base domain.LoanConfig,
	options CompareOptions,
) (*ComparisonSet, error) {
	baseName := baseNameFor(base, options.BaseScenarioName)

	baseResult, err := ce.run(ctx, baseName, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(&base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		modified.Name = baseName + "_" + templateName

		altResult, err := ce.run(ctx, modified.Name, *modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", templateName, err)
		}
		altResult.Description = template.Description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareLoans compares explicit loan configurations (not using templates)
func (ce *CompareEngine) CompareLoans(
	ctx context.Context,
	base domain.LoanConfig,
	alternatives []domain.LoanConfig,
) (*ComparisonSet, error) {
	baseName := baseNameFor(base, "")

	baseResult, err := ce.run(ctx, baseName, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	results := []ComparisonResult{}
	for i, alt := range alternatives {
		name := alt.Name
		if name == "" {
			name = fmt.Sprintf("alternative_%d", i+1)
		}

		altResult, err := ce.run(ctx, name, alt)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", name, err)
		}
		results = append(results, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) run(ctx context.Context, name string, config domain.LoanConfig) (ComparisonResult, error) {
	select {
	case <-ctx.Done():
		return ComparisonResult{}, ctx.Err()
	default:
	}

	result, err := ce.CalcEngine.Compute(config)
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(name, config, result), nil
}

func baseNameFor(base domain.LoanConfig, override string) string {
	switch {
	case override != "":
		return override
	case base.Name != "":
		return base.Name
	default:
		return "base"
	}
}
