package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
	"github.com/conornaught0n/emg-energy-demo/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.SQLiteStorage) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	return New(store), store
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "EMG Energy Sync Server", body["service"])
}

func TestSyncSingleSurvey(t *testing.T) {
	srv, store := newTestServer(t)

	survey := model.Survey{
		ID:               "survey-1",
		ProjectReference: "EMG-2026-001",
		JobTypeID:        "ber-assessment",
		VoiceNotes: []model.VoiceNote{
			{Transcription: "solid brick wall"},
		},
	}

	rec, body := doJSON(t, srv, http.MethodPost, "/api/sync", survey)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	loaded, err := store.GetSurvey(context.Background(), "survey-1")
	require.NoError(t, err)
	assert.Equal(t, "EMG-2026-001", loaded.ProjectReference)
	require.Len(t, loaded.VoiceNotes, 1)
}

func TestSyncSurveyArray(t *testing.T) {
	srv, _ := newTestServer(t)

	surveys := []model.Survey{
		{ID: "a", JobTypeID: "ber-assessment"},
		{ID: "b", JobTypeID: "heating-system"},
	}

	rec, body := doJSON(t, srv, http.MethodPost, "/api/sync", surveys)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["synced"])
}

func TestSyncInvalidPayload(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sync", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSurveys(t *testing.T) {
	srv, store := newTestServer(t)

	require.NoError(t, store.SaveSurvey(context.Background(), &model.Survey{
		ID: "survey-1", JobTypeID: "ber-assessment",
	}))

	rec, body := doJSON(t, srv, http.MethodGet, "/api/surveys", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
}

func TestListSurveys_Empty(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/api/surveys", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.NotNil(t, body["surveys"])
}

func TestGetSurvey(t *testing.T) {
	srv, store := newTestServer(t)

	require.NoError(t, store.SaveSurvey(context.Background(), &model.Survey{
		ID: "survey-1", JobTypeID: "ber-assessment",
	}))

	rec, body := doJSON(t, srv, http.MethodGet, "/api/survey/survey-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	survey, ok := body["survey"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "survey-1", survey["jobId"])
}

func TestGetSurvey_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/api/survey/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Survey not found", body["error"])
}

func TestDeleteSurvey(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSurvey(ctx, &model.Survey{
		ID: "survey-1", JobTypeID: "ber-assessment",
	}))

	rec, body := doJSON(t, srv, http.MethodDelete, "/api/survey/survey-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Survey deleted", body["message"])

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/survey/survey-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	srv, store := newTestServer(t)

	require.NoError(t, store.SaveSurvey(context.Background(), &model.Survey{
		ID:        "survey-1",
		JobTypeID: "ber-assessment",
		VoiceNotes: []model.VoiceNote{
			{Transcription: "one"}, {Transcription: "two"},
		},
	}))

	rec, body := doJSON(t, srv, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), stats["total"])
	assert.Equal(t, float64(2), stats["totalVoiceNotes"])
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/surveys", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
