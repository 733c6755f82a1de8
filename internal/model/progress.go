package model

// Progress event types, emitted in strict chronological order. A run's
// stream is terminated by exactly one "complete" or "error" event.
const (
	EventPromptGeneration = "prompt-generation"
	EventPromptExecution  = "prompt-execution"
	EventComplete         = "complete"
	EventError            = "error"
)

// ProgressEvent is one frame of the analysis progress stream
type ProgressEvent struct {
	Type             string          `json:"type"`
	Message          string          `json:"message,omitempty"`
	Prompt           string          `json:"prompt,omitempty"`
	CompletedPrompts int             `json:"completedPrompts"`
	TotalPrompts     int             `json:"totalPrompts"`
	Result           *AnalysisResult `json:"result,omitempty"`
}

// ProgressCallback receives events as the pipeline proceeds
type ProgressCallback func(ProgressEvent)
