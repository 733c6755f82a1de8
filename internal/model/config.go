package model

import (
	"errors"
	"fmt"
)

// Demographics holds the selected values per demographic axis
type Demographics struct {
	Genders       []string `json:"genders"`
	Ages          []string `json:"ages"`
	Ethnicities   []string `json:"ethnicities"`
	Socioeconomic []string `json:"socioeconomic"`
}

// Flatten returns all selected values across axes in axis order
// (gender, age, ethnicity, socioeconomic).
func (d Demographics) Flatten() []string {
	values := make([]string, 0, len(d.Genders)+len(d.Ages)+len(d.Ethnicities)+len(d.Socioeconomic))
	values = append(values, d.Genders...)
	values = append(values, d.Ages...)
	values = append(values, d.Ethnicities...)
	values = append(values, d.Socioeconomic...)
	return values
}

// SelectedParams is the configuration for one analysis run.
// It is built once from the request body and read-only afterwards.
type SelectedParams struct {
	Model                string       `json:"model"`
	Domain               string       `json:"domain"`
	PrimaryIssues        []string     `json:"primaryIssues"`
	Recommendations      []string     `json:"recommendations"`
	IrrelevantStatements []string     `json:"irrelevantStatements"`
	RelevantStatements   []string     `json:"relevantStatements"`
	Templates            []string     `json:"templates"`
	CustomPrompts        []string     `json:"customPrompts,omitempty"`
	Perspectives         []string     `json:"perspectives"`
	Demographics         Demographics `json:"demographics"`
	Context              string       `json:"context"`
	RelevanceOptions     []string     `json:"relevanceOptions"`
	QuestionTypes        []string     `json:"questionTypes"`
	Iterations           int          `json:"iterations"`
}

// AnalyzeRequest is the POST /api/v1/analyses body: run parameters plus a
// per-provider credential map (keys: provider names, values: API keys).
type AnalyzeRequest struct {
	SelectedParams
	UserAPIKeys map[string]string `json:"userApiKeys"`
}

// Validation errors returned before any provider call is made.
var (
	ErrMissingModel  = errors.New("missing required parameter: model")
	ErrMissingIssues = errors.New("missing required parameters: primaryIssues")
)

// Validate rejects configurations that would make the whole run invalid.
// Single-call failures are recovered during the run instead.
func (p SelectedParams) Validate() error {
	if p.Model == "" {
		return ErrMissingModel
	}
	if len(p.PrimaryIssues) == 0 && p.Domain != "custom" {
		return ErrMissingIssues
	}
	if p.Iterations < 1 {
		return fmt.Errorf("invalid iterations value: must be at least 1, got %d", p.Iterations)
	}
	return nil
}
