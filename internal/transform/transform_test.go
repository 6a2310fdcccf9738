package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Helper function to create a basic test loan
func createTestLoan() *domain.LoanConfig {
	return &domain.LoanConfig{
		Name:                      "Test Loan",
		HomeValue:                 decimal.NewFromInt(400000),
		DownPayment:               decimal.NewFromInt(40000),
		AnnualInterestRatePercent: decimal.NewFromFloat(6.5),
		LoanTermYears:             30,
		AdditionalMonthlyPayment:  decimal.NewFromInt(50),
		MonthlyCosts:              domain.DefaultMonthlyCosts(),
	}
}

func TestApplyTransforms_NilLoan(t *testing.T) {
	transforms := []LoanTransform{
		&AddExtraPayment{Amount: decimal.NewFromInt(100)},
	}

	_, err := ApplyTransforms(nil, transforms)
	if err == nil {
		t.Error("Expected error for nil loan, got nil")
	}
}

func TestApplyTransforms_EmptyTransforms(t *testing.T) {
	base := createTestLoan()

	result, err := ApplyTransforms(base, []LoanTransform{})
	if err != nil {
		t.Fatalf("Expected no error for empty transforms, got: %v", err)
	}

	if result == base {
		t.Error("Expected a copy, got same instance")
	}
	if result.Name != base.Name {
		t.Errorf("Expected name %s, got %s", base.Name, result.Name)
	}
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	transforms := []LoanTransform{
		&AddExtraPayment{Amount: decimal.NewFromInt(100)},
		nil,
	}

	_, err := ApplyTransforms(createTestLoan(), transforms)
	if err == nil {
		t.Fatal("Expected error for nil transform, got nil")
	}
	if !strings.Contains(err.Error(), "index 1 is nil") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestApplyTransforms_ChainDoesNotMutateBase(t *testing.T) {
	base := createTestLoan()
	transforms := []LoanTransform{
		&AddExtraPayment{Amount: decimal.NewFromInt(100)},
		&AddExtraPayment{Amount: decimal.NewFromInt(25)},
		&SetTerm{Years: 15},
		&AdjustRate{DeltaPercent: decimal.NewFromFloat(-0.25)},
	}

	result, err := ApplyTransforms(base, transforms)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.AdditionalMonthlyPayment.Equal(decimal.NewFromInt(175)) {
		t.Errorf("Expected extra payment 175, got %s", result.AdditionalMonthlyPayment)
	}
	if result.LoanTermYears != 15 {
		t.Errorf("Expected 15 year term, got %d", result.LoanTermYears)
	}
	if !result.AnnualInterestRatePercent.Equal(decimal.NewFromFloat(6.25)) {
		t.Errorf("Expected rate 6.25, got %s", result.AnnualInterestRatePercent)
	}

	if !base.AdditionalMonthlyPayment.Equal(decimal.NewFromInt(50)) || base.LoanTermYears != 30 {
		t.Error("Base loan was mutated")
	}
}

func TestApplyTransforms_ValidationFailureStopsChain(t *testing.T) {
	transforms := []LoanTransform{
		&SetTerm{Years: 15},
		&SetTerm{Years: 0},
	}

	_, err := ApplyTransforms(createTestLoan(), transforms)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	var te *TransformError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TransformError, got %T", err)
	}
	if te.TransformName != "set_term" || te.Operation != "validate" {
		t.Errorf("Unexpected transform error fields: %+v", te)
	}
}

func TestTransformValidation(t *testing.T) {
	base := createTestLoan()

	tests := []struct {
		name      string
		transform LoanTransform
		wantErr   bool
	}{
		{"add positive extra", &AddExtraPayment{Amount: decimal.NewFromInt(10)}, false},
		{"add zero extra", &AddExtraPayment{Amount: decimal.Zero}, true},
		{"set zero extra", &SetExtraPayment{Amount: decimal.Zero}, false},
		{"set negative extra", &SetExtraPayment{Amount: decimal.NewFromInt(-1)}, true},
		{"set term 50", &SetTerm{Years: 50}, false},
		{"set term 51", &SetTerm{Years: 51}, true},
		{"rate down to zero", &AdjustRate{DeltaPercent: decimal.NewFromFloat(-6.5)}, false},
		{"rate below zero", &AdjustRate{DeltaPercent: decimal.NewFromFloat(-7)}, true},
		{"rate zero delta", &AdjustRate{DeltaPercent: decimal.Zero}, true},
		{"down payment at minimum", &SetDownPayment{Amount: decimal.NewFromInt(12000)}, false},
		{"down payment below minimum", &SetDownPayment{Amount: decimal.NewFromInt(11999)}, true},
		{"down percent 20", &SetDownPaymentPercent{Percent: decimal.NewFromInt(20)}, false},
		{"down percent 2", &SetDownPaymentPercent{Percent: decimal.NewFromInt(2)}, true},
		{"down percent 101", &SetDownPaymentPercent{Percent: decimal.NewFromInt(101)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transform.Validate(base)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransformValidation_NilBase(t *testing.T) {
	transforms := []LoanTransform{
		&AddExtraPayment{Amount: decimal.NewFromInt(1)},
		&SetExtraPayment{Amount: decimal.NewFromInt(1)},
		&SetTerm{Years: 10},
		&AdjustRate{DeltaPercent: decimal.NewFromInt(1)},
		&SetDownPayment{Amount: decimal.NewFromInt(1)},
		&SetDownPaymentPercent{Percent: decimal.NewFromInt(10)},
	}

	for _, transform := range transforms {
		if err := transform.Validate(nil); err == nil {
			t.Errorf("%s: expected error for nil base", transform.Name())
		}
	}
}

func TestSetDownPaymentPercent_Apply(t *testing.T) {
	base := createTestLoan()

	result, err := (&SetDownPaymentPercent{Percent: decimal.NewFromInt(20)}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.DownPayment.Equal(decimal.NewFromInt(80000)) {
		t.Errorf("Expected down payment 80000, got %s", result.DownPayment)
	}
	if !result.LoanAmount().Equal(decimal.NewFromInt(320000)) {
		t.Errorf("Expected loan amount 320000, got %s", result.LoanAmount())
	}
}

func TestDescriptions(t *testing.T) {
	tests := []struct {
		transform LoanTransform
		want      string
	}{
		{&AddExtraPayment{Amount: decimal.NewFromInt(200)}, "Add $200.00 to the monthly principal payment"},
		{&SetExtraPayment{Amount: decimal.Zero}, "Remove the additional monthly payment"},
		{&SetTerm{Years: 15}, "Change the loan term to 15 years"},
		{&AdjustRate{DeltaPercent: decimal.NewFromFloat(-0.5)}, "Lower the interest rate by 0.5 points"},
		{&AdjustRate{DeltaPercent: decimal.NewFromFloat(0.5)}, "Raise the interest rate by 0.5 points"},
		{&SetDownPaymentPercent{Percent: decimal.NewFromInt(20)}, "Put 20% of the home value down"},
	}

	for _, tt := range tests {
		if got := tt.transform.Description(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.transform.Name(), tt.want, got)
		}
	}
}

func TestTransformError(t *testing.T) {
	cause := errors.New("boom")
	err := NewTransformError("set_term", "apply", "could not apply", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected TransformError to unwrap to its cause")
	}
	if err.Error() != "transform set_term (apply): could not apply: boom" {
		t.Errorf("Unexpected message: %s", err.Error())
	}

	bare := NewTransformError("set_term", "validate", "bad years", nil)
	if bare.Error() != "transform set_term (validate): bad years" {
		t.Errorf("Unexpected message: %s", bare.Error())
	}
}
