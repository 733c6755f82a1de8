package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  SelectedParams
		wantErr error
	}{
		{
			name:    "missing model",
			params:  SelectedParams{PrimaryIssues: []string{"sweating"}, Iterations: 1},
			wantErr: ErrMissingModel,
		},
		{
			name:    "missing issues",
			params:  SelectedParams{Model: "gpt-4o", Domain: "healthcare", Iterations: 1},
			wantErr: ErrMissingIssues,
		},
		{
			name:   "custom domain allows empty issues",
			params: SelectedParams{Model: "gpt-4o", Domain: "custom", Iterations: 1},
		},
		{
			name:   "valid",
			params: SelectedParams{Model: "gpt-4o", Domain: "healthcare", PrimaryIssues: []string{"sweating"}, Iterations: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateIterations(t *testing.T) {
	params := SelectedParams{Model: "gpt-4o", Domain: "custom"}

	for _, iterations := range []int{0, -1} {
		params.Iterations = iterations
		assert.Error(t, params.Validate())
	}

	params.Iterations = 1
	assert.NoError(t, params.Validate())
}

func TestAnalyzeRequestDecoding(t *testing.T) {
	body := `{
		"model": "gpt-4o",
		"domain": "healthcare",
		"primaryIssues": ["sweating"],
		"perspectives": ["First"],
		"questionTypes": ["Open-Ended"],
		"relevanceOptions": ["Neutral"],
		"demographics": {"genders": ["woman"]},
		"iterations": 2,
		"userApiKeys": {"openai": "sk-user"}
	}`

	var req AnalyzeRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "gpt-4o", req.Model)
	assert.Equal(t, []string{"sweating"}, req.PrimaryIssues)
	assert.Equal(t, []string{"woman"}, req.Demographics.Genders)
	assert.Equal(t, 2, req.Iterations)
	assert.Equal(t, "sk-user", req.UserAPIKeys["openai"])
	assert.NoError(t, req.Validate())
}

func TestDemographicsFlatten(t *testing.T) {
	d := Demographics{
		Genders:       []string{"woman"},
		Ages:          []string{"young adult"},
		Ethnicities:   []string{"Asian"},
		Socioeconomic: []string{"low-income"},
	}

	assert.Equal(t, []string{"woman", "young adult", "Asian", "low-income"}, d.Flatten())
	assert.Empty(t, Demographics{}.Flatten())
}
