package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"bias-probing/internal/model"
	"bias-probing/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInvoker lets tests script provider behavior per call
type stubInvoker struct {
	calls int32
	fn    func(call int32, promptText string) (string, error)
}

func (s *stubInvoker) Invoke(ctx context.Context, promptText, modelKey string, credentials map[string]string) (string, error) {
	call := atomic.AddInt32(&s.calls, 1)
	if s.fn != nil {
		return s.fn(call, promptText)
	}
	return "stub response", nil
}

func runParams() model.SelectedParams {
	return model.SelectedParams{
		Model:            "gpt-4o",
		Domain:           "healthcare",
		Templates:        []string{"{} am feeling anxious."},
		Perspectives:     []string{model.PerspectiveFirst},
		QuestionTypes:    []string{model.QuestionOpenEnded},
		RelevanceOptions: []string{model.RelevanceNeutral},
		Demographics: model.Demographics{
			Genders: []string{"woman"},
		},
		Iterations: 2,
	}
}

func TestRunProducesFullMatrix(t *testing.T) {
	invoker := &stubInvoker{}
	result, err := Run(context.Background(), "run-1", runParams(), nil, invoker, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "run-1", result.ID)
	assert.Equal(t, "gpt-4o", result.ModelName)

	// 1 variant x 2 groups (baseline + woman), 2 iterations each
	require.Len(t, result.Prompts, 2)
	for _, p := range result.Prompts {
		assert.Len(t, p.Responses, 2)
		for _, r := range p.Responses {
			assert.Equal(t, "stub response", r)
		}
	}
	assert.Equal(t, int32(4), atomic.LoadInt32(&invoker.calls))

	assert.Equal(t, []string{"baseline"}, result.Prompts[0].Metadata.Demographics)
	assert.Equal(t, []string{"woman"}, result.Prompts[1].Metadata.Demographics)
	assert.Equal(t, model.PerspectiveFirst, result.Prompts[0].Metadata.Perspective)
	assert.Equal(t, model.QuestionOpenEnded, result.Prompts[0].Metadata.QuestionType)
	assert.Contains(t, result.Prompts[1].Text, "I am a woman.")

	assert.Equal(t, "Analyzed 1 prompts with 2 demographic groups each", result.Details)
	assert.NotEmpty(t, result.Timestamp)
}

func TestRunGeneratesIDWhenMissing(t *testing.T) {
	result, err := Run(context.Background(), "", runParams(), nil, &stubInvoker{}, nil, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
}

func TestRunFailedCallsBecomePlaceholders(t *testing.T) {
	invoker := &stubInvoker{fn: func(call int32, _ string) (string, error) {
		if call%2 == 0 {
			return "", errors.New("upstream down")
		}
		return "fine", nil
	}}

	result, err := Run(context.Background(), "run-2", runParams(), nil, invoker, nil, nil)

	require.NoError(t, err, "single-call failures never abort the run")
	require.Len(t, result.Prompts, 2)
	for _, p := range result.Prompts {
		assert.Equal(t, []string{"fine", "Failed to get response"}, p.Responses)
	}
}

func TestRunSanitizesAndRejectsEmptyResponses(t *testing.T) {
	invoker := &stubInvoker{fn: func(call int32, _ string) (string, error) {
		if call == 1 {
			return "  hello\x00\x01 world  ", nil
		}
		return "\x00\x01  ", nil
	}}

	params := runParams()
	params.Demographics = model.Demographics{}
	params.Iterations = 2

	result, err := Run(context.Background(), "run-3", params, nil, invoker, nil, nil)

	require.NoError(t, err)
	require.Len(t, result.Prompts, 1)
	assert.Equal(t, []string{"hello world", "Response too large or empty"}, result.Prompts[0].Responses)
}

func TestRunProgressEvents(t *testing.T) {
	var events []model.ProgressEvent
	onProgress := func(event model.ProgressEvent) {
		events = append(events, event)
	}

	_, err := Run(context.Background(), "run-4", runParams(), nil, &stubInvoker{}, nil, onProgress)
	require.NoError(t, err)

	// two generation events followed by one execution event per combination
	require.Len(t, events, 2+2)
	assert.Equal(t, model.EventPromptGeneration, events[0].Type)
	assert.Equal(t, "Generating prompts...", events[0].Message)
	assert.Equal(t, model.EventPromptGeneration, events[1].Type)
	assert.Equal(t, 2, events[1].TotalPrompts)

	completed := 0
	for _, event := range events[2:] {
		assert.Equal(t, model.EventPromptExecution, event.Type)
		assert.Equal(t, 2, event.TotalPrompts)
		assert.GreaterOrEqual(t, event.CompletedPrompts, completed, "counter never decreases")
		completed = event.CompletedPrompts
		assert.NotEmpty(t, event.Prompt)
	}
	assert.Equal(t, 2, completed, "counter reaches the total on the last execution event")
}

func TestRunPromptPreviewCapped(t *testing.T) {
	var events []model.ProgressEvent
	params := runParams()
	params.Templates = []string{"{} am feeling anxious about " + strings.Repeat("x", 200) + "."}
	params.Demographics = model.Demographics{}

	_, err := Run(context.Background(), "run-5", params, nil, &stubInvoker{}, nil, func(e model.ProgressEvent) {
		events = append(events, e)
	})
	require.NoError(t, err)

	last := events[len(events)-1]
	assert.Len(t, last.Prompt, 100+len("..."))
	assert.True(t, strings.HasSuffix(last.Prompt, "..."))
}

func TestRunAbortsOnProviderConfigError(t *testing.T) {
	tests := []struct {
		name string
		kind provider.ErrorKind
	}{
		{"unknown model", provider.KindUnknownModel},
		{"missing credential", provider.KindMissingCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker := &stubInvoker{fn: func(_ int32, _ string) (string, error) {
				return "", &provider.CallError{Kind: tt.kind, Model: "gpt-4o", Err: errors.New("misconfigured")}
			}}

			_, err := Run(context.Background(), "run-7", runParams(), nil, invoker, nil, nil)

			require.Error(t, err, "configuration failures fail the whole run")
			assert.True(t, provider.IsKind(err, tt.kind))
			assert.Equal(t, int32(1), atomic.LoadInt32(&invoker.calls),
				"no placeholder matrix is produced after a configuration failure")
		})
	}
}

func TestRunCancellationStopsNewWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	invoker := &stubInvoker{fn: func(call int32, _ string) (string, error) {
		if call == 2 {
			cancel()
			return "", ctx.Err()
		}
		return "ok", nil
	}}

	_, err := Run(ctx, "run-6", runParams(), nil, invoker, nil, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(2), atomic.LoadInt32(&invoker.calls), "no further calls after cancellation")
}

func TestExecuteMatrixOrder(t *testing.T) {
	var rendered []string
	invoker := &stubInvoker{fn: func(_ int32, promptText string) (string, error) {
		rendered = append(rendered, promptText)
		return "ok", nil
	}}

	variants := []model.PromptVariant{
		{Text: "v1", Perspective: model.PerspectiveFirst, QuestionType: model.QuestionOpenEnded},
		{Text: "v2", Perspective: model.PerspectiveFirst, QuestionType: model.QuestionOpenEnded},
	}
	groups := []model.DemographicGroup{{}, {"woman"}}

	params := runParams()
	params.Iterations = 1
	results, err := Execute(context.Background(), params, variants, groups, nil, invoker, nil)

	require.NoError(t, err)
	require.Len(t, results, 4)
	// outer loop over variants, inner loop over groups
	assert.Equal(t, []string{"v1", "I am a woman. v1", "v2", "I am a woman. v2"}, rendered)
}
