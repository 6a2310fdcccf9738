package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (LoanTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("add_extra_payment", createAddExtraPayment)
	registry.Register("set_extra_payment", createSetExtraPayment)
	registry.Register("set_term", createSetTerm)
	registry.Register("adjust_rate", createAdjustRate)
	registry.Register("set_down_payment", createSetDownPayment)
	registry.Register("set_down_payment_percent", createSetDownPaymentPercent)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (LoanTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "add_extra_payment:amount=250"
func (r *TransformRegistry) ParseTransformSpec(spec string) (LoanTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func decimalParam(transform, key string, params map[string]string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func createAddExtraPayment(params map[string]string) (LoanTransform, error) {
	amount, err := decimalParam("add_extra_payment", "amount", params)
	if err != nil {
		return nil, err
	}
	return &AddExtraPayment{Amount: amount}, nil
}

func createSetExtraPayment(params map[string]string) (LoanTransform, error) {
	amount, err := decimalParam("set_extra_payment", "amount", params)
	if err != nil {
		return nil, err
	}
	return &SetExtraPayment{Amount: amount}, nil
}

func createSetTerm(params map[string]string) (LoanTransform, error) {
	yearsStr, ok := params["years"]
	if !ok {
		return nil, fmt.Errorf("set_term requires 'years' parameter")
	}

	years, err := strconv.Atoi(yearsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid years value: %w", err)
	}

	return &SetTerm{Years: years}, nil
}

func createAdjustRate(params map[string]string) (LoanTransform, error) {
	delta, err := decimalParam("adjust_rate", "delta", params)
	if err != nil {
		return nil, err
	}
	return &AdjustRate{DeltaPercent: delta}, nil
}

func createSetDownPayment(params map[string]string) (LoanTransform, error) {
	amount, err := decimalParam("set_down_payment", "amount", params)
	if err != nil {
		return nil, err
	}
	return &SetDownPayment{Amount: amount}, nil
}

func createSetDownPaymentPercent(params map[string]string) (LoanTransform, error) {
	percent, err := decimalParam("set_down_payment_percent", "percent", params)
	if err != nil {
		return nil, err
	}
	return &SetDownPaymentPercent{Percent: percent}, nil
}
