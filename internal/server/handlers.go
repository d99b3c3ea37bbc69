package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/conornaught0n/emg-energy-demo/internal/common"
	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// handleSync accepts either a single survey object or an array of
// surveys, matching what the capture clients post.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid sync payload: %w", err))
		return
	}

	var surveys []model.Survey
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &surveys); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid survey list: %w", err))
			return
		}
	} else {
		var survey model.Survey
		if err := json.Unmarshal(raw, &survey); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid survey: %w", err))
			return
		}
		surveys = []model.Survey{survey}
	}

	synced := 0
	for i := range surveys {
		if err := s.store.SaveSurvey(r.Context(), &surveys[i]); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		synced++
	}

	if synced == 1 {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Survey synced",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"synced":  synced,
		"message": fmt.Sprintf("Synced %d surveys", synced),
	})
}

func (s *Server) handleListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := s.store.ListSurveys(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if surveys == nil {
		surveys = []model.Survey{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(surveys),
		"surveys": surveys,
	})
}

func (s *Server) handleGetSurvey(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	survey, err := s.store.GetSurvey(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Survey not found"})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"survey":  survey,
	})
}

func (s *Server) handleDeleteSurvey(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.store.DeleteSurvey(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Survey not found"})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Survey deleted",
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "EMG Energy Sync Server",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	common.LogError(err, "request failed", nil)
	writeJSON(w, status, map[string]any{"error": err.Error()})
}
