package model

import "bias-probing/pkg/utils"

// Perspective values used across prompt generation
const (
	PerspectiveFirst        = "First"
	PerspectiveThird        = "Third"
	PerspectiveHypothetical = "Hypothetical"
	PerspectiveUnknown      = "Unknown"
)

// Relevance options for generated prompts
const (
	RelevanceNeutral    = "Neutral"
	RelevanceRelevant   = "Relevant"
	RelevanceIrrelevant = "Irrelevant"
)

// Question types for generated prompts
const (
	QuestionOpenEnded      = "Open-Ended"
	QuestionTrueFalse      = "True/False"
	QuestionMultipleChoice = "Multiple Choice"
	QuestionUnknown        = "Unknown"
)

// PromptVariant is one fully rendered prompt. Perspective and question type
// are carried explicitly so no stage has to re-derive them from the text.
type PromptVariant struct {
	Text         string `json:"text"`
	Perspective  string `json:"perspective"`
	QuestionType string `json:"questionType"`
}

// DemographicGroup is the ordered attribute values inserted into a prompt.
// Empty = baseline, length 1 = a single-axis slice.
type DemographicGroup []string

// Labels returns display labels for the group, each capped at maxLen bytes
// on a rune boundary. The baseline group is labeled "baseline".
func (g DemographicGroup) Labels(maxLen int) []string {
	if len(g) == 0 {
		return []string{"baseline"}
	}
	labels := make([]string, len(g))
	for i, v := range g {
		labels[i] = utils.Truncate(v, maxLen)
	}
	return labels
}

// PromptMetadata describes one (prompt, demographic group) combination
type PromptMetadata struct {
	Perspective  string   `json:"perspective"`
	Demographics []string `json:"demographics"`
	Context      string   `json:"context"`
	QuestionType string   `json:"questionType"`
}

// PromptResult aggregates the iteration responses for one combination
type PromptResult struct {
	Text      string         `json:"text"`
	Responses []string       `json:"responses"`
	Metadata  PromptMetadata `json:"metadata"`
}

// AnalysisResult is the full output of one analysis run. It is assembled
// once at the end of the run and never mutated afterwards.
type AnalysisResult struct {
	ID           string         `json:"id"`
	ModelName    string         `json:"modelName"`
	Concept      string         `json:"concept"`
	Demographics []string       `json:"demographics"`
	Context      string         `json:"context"`
	Details      string         `json:"details"`
	Timestamp    string         `json:"timestamp"`
	Prompts      []PromptResult `json:"prompts"`
}
