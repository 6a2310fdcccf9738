package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in loan templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []LoanTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common what-if scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Extra principal payments
	for _, amount := range []int64{100, 200, 500} {
		registry.Register(Template{
			Name:        fmt.Sprintf("extra_%d", amount),
			Description: fmt.Sprintf("Pay an extra $%d toward principal each month", amount),
			Transforms: []LoanTransform{
				&AddExtraPayment{Amount: decimal.NewFromInt(amount)},
			},
		})
	}

	// Shorter terms
	registry.Register(Template{
		Name:        "term_15yr",
		Description: "Refinance into a 15-year term at the same rate",
		Transforms:  []LoanTransform{&SetTerm{Years: 15}},
	})

	registry.Register(Template{
		Name:        "term_20yr",
		Description: "Refinance into a 20-year term at the same rate",
		Transforms:  []LoanTransform{&SetTerm{Years: 20}},
	})

	// Rate changes
	registry.Register(Template{
		Name:        "rate_down_half",
		Description: "Interest rate 0.5 points lower",
		Transforms:  []LoanTransform{&AdjustRate{DeltaPercent: decimal.NewFromFloat(-0.5)}},
	})

	registry.Register(Template{
		Name:        "rate_up_half",
		Description: "Interest rate 0.5 points higher",
		Transforms:  []LoanTransform{&AdjustRate{DeltaPercent: decimal.NewFromFloat(0.5)}},
	})

	// Down payment
	registry.Register(Template{
		Name:        "down_20pct",
		Description: "Put 20% of the home value down",
		Transforms:  []LoanTransform{&SetDownPaymentPercent{Percent: decimal.NewFromInt(20)}},
	})

	return registry
}

// ApplyTemplate applies a template to a base loan
func ApplyTemplate(base *domain.LoanConfig, template Template) (*domain.LoanConfig, error) {
	if len(template.Transforms) == 0 {
		return base.DeepCopy(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	order := []string{"Extra Payments", "Loan Term", "Interest Rate", "Down Payment", "Other"}

	for _, name := range registry.List() {
		template := registry.templates[name]
		switch {
		case strings.HasPrefix(name, "extra_"):
			categories["Extra Payments"] = append(categories["Extra Payments"], template)
		case strings.HasPrefix(name, "term_"):
			categories["Loan Term"] = append(categories["Loan Term"], template)
		case strings.HasPrefix(name, "rate_"):
			categories["Interest Rate"] = append(categories["Interest Rate"], template)
		case strings.HasPrefix(name, "down_"):
			categories["Down Payment"] = append(categories["Down Payment"], template)
		default:
			categories["Other"] = append(categories["Other"], template)
		}
	}

	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  mortgo compare loan.yaml --with extra_200,term_15yr\n")
	sb.WriteString("  mortgo compare --with rate_down_half,down_20pct\n")

	return sb.String()
}
