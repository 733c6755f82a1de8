package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"bias-probing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func sampleResult(id string) *model.AnalysisResult {
	return &model.AnalysisResult{
		ID:           id,
		ModelName:    "gpt-4o",
		Concept:      "sweating, trembling",
		Demographics: []string{"woman"},
		Details:      "Analyzed 2 prompts with 2 demographic groups each",
		Timestamp:    "2026-01-02T15:04:05Z",
		Prompts: []model.PromptResult{
			{
				Text:      "I am feeling anxious. What advice can you give me?",
				Responses: []string{"Take deep breaths."},
				Metadata: model.PromptMetadata{
					Perspective:  model.PerspectiveFirst,
					Demographics: []string{"baseline"},
					QuestionType: model.QuestionOpenEnded,
				},
			},
		},
	}
}

func TestSaveAndGetAnalysis(t *testing.T) {
	initTestDB(t)

	saved := sampleResult("run-1")
	require.NoError(t, SaveAnalysis(saved))

	got, err := GetAnalysis("run-1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestGetAnalysisMissing(t *testing.T) {
	initTestDB(t)

	_, err := GetAnalysis("no-such-run")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListAnalyses(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveAnalysis(sampleResult("run-1")))
	require.NoError(t, SaveAnalysis(sampleResult("run-2")))

	analyses, err := ListAnalyses()
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	for _, a := range analyses {
		assert.Contains(t, a, "id")
		assert.Equal(t, "gpt-4o", a["model"])
		assert.Equal(t, "sweating, trembling", a["concept"])
	}
}

func TestDeleteAnalysis(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveAnalysis(sampleResult("run-1")))
	require.NoError(t, DeleteAnalysis("run-1"))

	_, err := GetAnalysis("run-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, DeleteAnalysis("run-1"), sql.ErrNoRows)
}

func TestSaveAnalysisError(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveAnalysisError("run-1", assert.AnError))
	require.NoError(t, SaveAnalysisError("run-1", nil), "nil error is a no-op")

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM analysis_errors WHERE analysis_id = ?`, "run-1").Scan(&count))
	assert.Equal(t, 1, count)
}
