package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/mortgo/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, ErrNilReport
	}
	return json.MarshalIndent(report, "", "  ")
}

// YAMLFormatter serializes the report as YAML using the same field names as loan files.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, ErrNilReport
	}
	return yaml.Marshal(report)
}
