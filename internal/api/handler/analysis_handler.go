package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bias-probing/internal/model"
	"bias-probing/internal/pipeline"
	"bias-probing/internal/provider"
	"bias-probing/internal/store"
	"bias-probing/pkg/stream"

	"github.com/google/uuid"
)

// Analysis bundles the dependencies the analysis endpoints need. The
// invoker is an interface so tests can run the full handler against a
// stubbed provider.
type Analysis struct {
	Invoker pipeline.Invoker
	// Registry is consulted before a run starts so misconfigured requests
	// are rejected up front instead of producing a placeholder-only run.
	Registry provider.Registry
	// DefaultKeys are environment-supplied credentials used when the
	// request does not carry a key for a provider.
	DefaultKeys map[string]string
}

// CreateAnalysis runs a bias probing analysis and streams progress
// @Summary Run an analysis
// @Description Start a bias probing run and stream progress as server-sent events, terminated by a complete or error event
// @Tags analyses
// @Accept json
// @Produce text/event-stream
// @Param request body model.AnalyzeRequest true "Run parameters and per-provider API keys"
// @Success 200 {string} string "SSE stream of progress events"
// @Failure 400 {object} map[string]interface{} "Invalid run configuration"
// @Router /analyses [post]
func (h *Analysis) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	credentials := make(map[string]string, len(h.DefaultKeys)+len(req.UserAPIKeys))
	for provider, key := range h.DefaultKeys {
		credentials[provider] = key
	}
	for provider, key := range req.UserAPIKeys {
		if key != "" {
			credentials[provider] = key
		}
	}

	// Unknown models and absent credentials fail the whole run, so reject
	// them before the stream opens rather than after N placeholder prompts.
	cfg, ok := h.Registry[req.Model]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown model: %s", req.Model))
		return
	}
	if credentials[cfg.Provider] == "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("No API key available for provider %s", cfg.Provider))
		return
	}

	enc, err := stream.NewEncoder(w)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer enc.Close()

	// A failed frame write means the client is gone; cancel the run so no
	// further combinations are started.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	onProgress := func(event model.ProgressEvent) {
		if err := enc.Send(event); err != nil {
			cancel()
		}
	}

	runID := uuid.New().String()
	result, err := pipeline.Run(ctx, runID, req.SelectedParams, credentials, h.Invoker, nil, onProgress)
	if err != nil {
		store.SaveAnalysisError(runID, err)
		enc.Send(model.ProgressEvent{
			Type:    model.EventError,
			Message: err.Error(),
		})
		return
	}

	if err := store.SaveAnalysis(result); err != nil {
		fmt.Printf("⚠️ Failed to save analysis %s: %v\n", result.ID, err)
	}

	enc.Send(model.ProgressEvent{
		Type:             model.EventComplete,
		CompletedPrompts: len(result.Prompts),
		TotalPrompts:     len(result.Prompts),
		Result:           result,
	})
}

// ListAnalyses retrieves all saved analysis runs
// @Summary List analyses
// @Description Get summaries of all saved analysis runs
// @Tags analyses
// @Accept json
// @Produce json
// @Success 200 {array} map[string]interface{} "List of analyses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analyses [get]
func (h *Analysis) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := store.ListAnalyses()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch analyses")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// GetAnalysis retrieves one saved analysis run
// @Summary Get analysis
// @Description Retrieve the full result of a saved analysis run
// @Tags analyses
// @Accept json
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} model.AnalysisResult "Analysis result"
// @Failure 400 {object} map[string]interface{} "Invalid analysis ID"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /analyses/{id} [get]
func (h *Analysis) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID, ok := analysisIDFromPath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "Analysis ID is required")
		return
	}

	result, err := store.GetAnalysis(analysisID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Analysis not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteAnalysis removes a saved analysis run
// @Summary Delete analysis
// @Description Delete a saved analysis run and its recorded errors
// @Tags analyses
// @Accept json
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} map[string]interface{} "Analysis deleted"
// @Failure 400 {object} map[string]interface{} "Invalid analysis ID"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /analyses/{id} [delete]
func (h *Analysis) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID, ok := analysisIDFromPath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusBadRequest, "Analysis ID is required")
		return
	}

	if err := store.DeleteAnalysis(analysisID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Analysis not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Analysis deleted successfully",
		"id":      analysisID,
	})
}

// GetParams serves the selectable parameter space
// @Summary Get pipeline parameters
// @Description Get the default parameter space (domains, templates, demographics, models) for building a run configuration
// @Tags params
// @Accept json
// @Produce json
// @Success 200 {object} model.PipelineParams "Default pipeline parameters"
// @Router /params [get]
func (h *Analysis) GetParams(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.DefaultPipelineParams())
}

// analysisIDFromPath extracts the trailing ID segment from
// /api/v1/analyses/{id}
func analysisIDFromPath(path string) (string, bool) {
	prefix := "/api/v1/analyses/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// writeError sends a JSON error body with the given status
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": message,
	})
}
