package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bias-probing/internal/model"
	"bias-probing/internal/prompt"
	"bias-probing/internal/provider"
	"bias-probing/pkg/utils"

	"github.com/google/uuid"
)

// Limits applied while assembling results
const (
	maxResponseSize       = 1024 * 1024 // 1MB per response
	promptPreviewLimit    = 100
	promptTextLimit       = 1000
	contextLimit          = 1000
	demographicLabelLimit = 100
)

// Placeholder responses recorded instead of aborting a combination
const (
	failedPlaceholder   = "Failed to get response"
	oversizePlaceholder = "Response too large or empty"
)

// Invoker sends one prompt to a model and returns the response text.
// The provider Router implements it; tests substitute stubs.
type Invoker interface {
	Invoke(ctx context.Context, promptText, modelKey string, credentials map[string]string) (string, error)
}

// ------------------- Pipeline Runner -------------------

// Run drives a full analysis: expands the configuration into prompt
// variants and demographic groups, executes every combination through the
// invoker, and assembles the final result. Progress events are emitted as
// work proceeds; the terminal complete/error event is the caller's to send
// once Run returns.
func Run(ctx context.Context, runID string, params model.SelectedParams, credentials map[string]string, invoker Invoker, rng *rand.Rand, onProgress model.ProgressCallback) (*model.AnalysisResult, error) {
	if runID == "" {
		runID = uuid.New().String()
	}
	fmt.Printf("🚀 Starting analysis run %s (model %s, domain %s)\n", runID, params.Model, params.Domain)

	emit(onProgress, model.ProgressEvent{
		Type:    model.EventPromptGeneration,
		Message: "Generating prompts...",
	})

	variants := prompt.NewExpander(rng).Expand(params)
	groups := prompt.Groups(params.Demographics)
	total := len(variants) * len(groups)

	emit(onProgress, model.ProgressEvent{
		Type:         model.EventPromptGeneration,
		Message:      fmt.Sprintf("Generated %d prompt templates with %d demographic groups each", len(variants), len(groups)),
		TotalPrompts: total,
	})

	results, err := Execute(ctx, params, variants, groups, credentials, invoker, onProgress)
	if err != nil {
		fmt.Printf("❌ Analysis run %s aborted: %v\n", runID, err)
		return nil, err
	}

	result := &model.AnalysisResult{
		ID:           runID,
		ModelName:    params.Model,
		Concept:      strings.Join(params.PrimaryIssues, ", "),
		Demographics: params.Demographics.Flatten(),
		Context:      params.Context,
		Details:      fmt.Sprintf("Analyzed %d prompts with %d demographic groups each", len(variants), len(groups)),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Prompts:      results,
	}

	fmt.Printf("✅ Analysis run %s completed: %d combinations\n", runID, len(results))
	return result, nil
}

// Execute walks the (prompt variant x demographic group) matrix in a fixed
// order: outer loop over variants, inner loop over groups. Each
// combination is called Iterations times; transient single-call failures
// become placeholder responses and never abort the run. The returned error
// is non-nil when the context is cancelled before the matrix finishes or
// when a call fails for a configuration reason (unknown model, missing
// credential) that would fail every remaining call too.
func Execute(ctx context.Context, params model.SelectedParams, variants []model.PromptVariant, groups []model.DemographicGroup, credentials map[string]string, invoker Invoker, onProgress model.ProgressCallback) ([]model.PromptResult, error) {
	total := len(variants) * len(groups)
	results := make([]model.PromptResult, 0, total)
	completed := 0

	for _, variant := range variants {
		for _, group := range groups {
			// Stop starting new combinations once the caller is gone
			if err := ctx.Err(); err != nil {
				return results, err
			}

			rendered := prompt.Render(variant, group)

			emit(onProgress, model.ProgressEvent{
				Type:             model.EventPromptExecution,
				Message:          fmt.Sprintf("Processing prompt %d/%d", completed+1, total),
				Prompt:           utils.Preview(rendered, promptPreviewLimit),
				CompletedPrompts: completed + 1,
				TotalPrompts:     total,
			})

			responses := make([]string, 0, params.Iterations)
			for i := 0; i < params.Iterations; i++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}

				text, err := invoker.Invoke(ctx, rendered, params.Model, credentials)
				if err != nil {
					if ctx.Err() != nil {
						return results, ctx.Err()
					}
					// Misconfiguration fails every remaining call the same
					// way; abort the run instead of filling the matrix with
					// placeholders.
					if provider.IsKind(err, provider.KindUnknownModel) || provider.IsKind(err, provider.KindMissingCredential) {
						return results, err
					}
					fmt.Printf("❌ Iteration %d failed for prompt %q: %v\n", i, utils.Preview(rendered, 60), err)
					responses = append(responses, failedPlaceholder)
					continue
				}

				sanitized := utils.SanitizeResponse(text)
				if sanitized == "" || len(sanitized) >= maxResponseSize {
					fmt.Printf("⚠️ Response exceeded size limit or was empty\n")
					responses = append(responses, oversizePlaceholder)
					continue
				}
				responses = append(responses, sanitized)
			}

			completed++

			results = append(results, model.PromptResult{
				Text:      utils.Truncate(rendered, promptTextLimit),
				Responses: responses,
				Metadata: model.PromptMetadata{
					Perspective:  variant.Perspective,
					Demographics: group.Labels(demographicLabelLimit),
					Context:      utils.Truncate(params.Context, contextLimit),
					QuestionType: variant.QuestionType,
				},
			})
		}
	}

	return results, nil
}

// emit forwards an event to the callback when one is registered
func emit(onProgress model.ProgressCallback, event model.ProgressEvent) {
	if onProgress != nil {
		onProgress(event)
	}
}
