package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyCosts captures recurring non-loan costs bundled into the monthly payment.
// When UseBreakdown is set the itemized fields are summed; otherwise Flat is used as-is.
type MonthlyCosts struct {
	UseBreakdown  bool            `yaml:"use_breakdown" json:"useBreakdown"`
	PropertyTax   decimal.Decimal `yaml:"property_tax" json:"propertyTax"`
	HomeInsurance decimal.Decimal `yaml:"home_insurance" json:"homeInsurance"`
	PMI           decimal.Decimal `yaml:"pmi" json:"pmi"`
	HOAFees       decimal.Decimal `yaml:"hoa_fees" json:"hoaFees"`
	Flat          decimal.Decimal `yaml:"flat" json:"flat"`
}

// CostComponent is a labelled monthly cost.
type CostComponent struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// DefaultMonthlyCosts returns the itemized defaults (tax 300, insurance 150, PMI 50, HOA 100).
func DefaultMonthlyCosts() MonthlyCosts {
	return MonthlyCosts{
		UseBreakdown:  true,
		PropertyTax:   decimal.NewFromInt(300),
		HomeInsurance: decimal.NewFromInt(150),
		PMI:           decimal.NewFromInt(50),
		HOAFees:       decimal.NewFromInt(100),
		Flat:          decimal.NewFromInt(600),
	}
}

// FlatMonthlyCosts returns a single-figure cost block.
func FlatMonthlyCosts(amount decimal.Decimal) MonthlyCosts {
	return MonthlyCosts{Flat: amount}
}

// Total returns the monthly amount in effect.
func (m MonthlyCosts) Total() decimal.Decimal {
	if !m.UseBreakdown {
		return m.Flat
	}
	return m.PropertyTax.Add(m.HomeInsurance).Add(m.PMI).Add(m.HOAFees)
}

// Components lists the costs in display order.
func (m MonthlyCosts) Components() []CostComponent {
	if !m.UseBreakdown {
		return []CostComponent{{Label: "Other Monthly Costs", Amount: m.Flat}}
	}
	return []CostComponent{
		{Label: "Property Tax", Amount: m.PropertyTax},
		{Label: "Home Insurance", Amount: m.HomeInsurance},
		{Label: "PMI", Amount: m.PMI},
		{Label: "HOA Fees", Amount: m.HOAFees},
	}
}

// Negative reports the first component below zero, if any.
func (m MonthlyCosts) Negative() (string, bool) {
	fields := []CostComponent{
		{Label: "property_tax", Amount: m.PropertyTax},
		{Label: "home_insurance", Amount: m.HomeInsurance},
		{Label: "pmi", Amount: m.PMI},
		{Label: "hoa_fees", Amount: m.HOAFees},
		{Label: "flat", Amount: m.Flat},
	}
	for _, f := range fields {
		if f.Amount.IsNegative() {
			return f.Label, true
		}
	}
	return "", false
}
