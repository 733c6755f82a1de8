package api

import (
	"bias-probing/internal/api/handler"
	"bias-probing/pkg/router"
)

// RegisterRoutes wires the analysis endpoints into the router
func RegisterRoutes(r *router.Router, h *handler.Analysis) {
	r.POST("/api/v1/analyses", h.CreateAnalysis)
	r.GET("/api/v1/analyses", h.ListAnalyses)
	r.GET("/api/v1/params", h.GetParams)
	// Generic analysis routes last
	r.GET("/api/v1/analyses/*", h.GetAnalysis)
	r.DELETE("/api/v1/analyses/*", h.DeleteAnalysis)
}
