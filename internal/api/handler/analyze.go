// Package handler implements the HTTP handlers behind the API routes.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/HendryAvila/briefcheck/internal/api/response"
)

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Brief string `json:"brief"`
	Mode  string `json:"mode"`
}

// AnalyzeResponse wraps the report with its display reading.
type AnalyzeResponse struct {
	Mode      analyzer.Mode            `json:"mode"`
	RiskLevel analyzer.RiskLevel       `json:"riskLevel"`
	Summary   string                   `json:"summary"`
	Analysis  analyzer.ProjectAnalysis `json:"analysis"`
}

// NewHealthHandler returns an http.HandlerFunc for GET /api/v1/health.
func NewHealthHandler(version string, storageEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, map[string]any{
			"status":  "ok",
			"version": version,
			"storage": storageEnabled,
		})
	}
}

// NewAnalyzeHandler returns an http.HandlerFunc for POST /api/v1/analyze.
func NewAnalyzeHandler(defaultMode analyzer.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, response.CodeInvalidRequest, "Invalid JSON body", nil)
			return
		}
		if strings.TrimSpace(req.Brief) == "" {
			response.Error(w, http.StatusBadRequest, response.CodeInvalidRequest, "brief is required", nil)
			return
		}

		mode, ok := resolveMode(w, req.Mode, defaultMode)
		if !ok {
			return
		}

		a := analyzer.Analyze(req.Brief, mode)
		level := analyzer.LevelFor(a.RiskScore)
		response.JSON(w, AnalyzeResponse{
			Mode:      mode,
			RiskLevel: level,
			Summary:   level.Summary(),
			Analysis:  a,
		})
	}
}

// resolveMode parses name, writing a 400 and returning false when it is unknown.
func resolveMode(w http.ResponseWriter, name string, defaultMode analyzer.Mode) (analyzer.Mode, bool) {
	if name == "" {
		return defaultMode, true
	}
	mode, err := analyzer.ParseMode(strings.ToLower(name))
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidRequest, err.Error(),
			map[string]any{"allowed": []analyzer.ModeType{analyzer.ModeQuick, analyzer.ModeDeep}})
		return analyzer.Mode{}, false
	}
	return mode, true
}
