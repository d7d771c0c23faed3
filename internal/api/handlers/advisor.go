package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/rift-companion/internal/service"
)

type AdvisorHandler struct {
	advisorService *service.AdvisorService
}

func NewAdvisorHandler(advisorService *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

type ThreatsRequest struct {
	OpponentIDs []string `json:"opponentIds"`
}

func (h *AdvisorHandler) AnalyzeThreats(w http.ResponseWriter, r *http.Request) {
	var req ThreatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.advisorService.AnalyzeThreats(r.Context(), req.OpponentIDs)
	if err != nil {
		writeServiceError(w, "advisor.AnalyzeThreats", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *AdvisorHandler) RecommendBuild(w http.ResponseWriter, r *http.Request) {
	var req service.BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.advisorService.RecommendBuild(r.Context(), req)
	if err != nil {
		writeServiceError(w, "advisor.RecommendBuild", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AdvisorHandler) SimulateComposition(w http.ResponseWriter, r *http.Request) {
	var req service.CompositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.advisorService.SimulateComposition(r.Context(), req)
	if err != nil {
		writeServiceError(w, "advisor.SimulateComposition", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
