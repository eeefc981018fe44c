package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tesla-notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	fiberApp, application := setupTestApp(t)

	memo, err := application.MemoService.Create("keep", nil, nil)
	require.NoError(t, err)
	archived := true
	_, err = application.MemoService.Update(memo.ID, models.MemoPatch{Archived: &archived})
	require.NoError(t, err)
	_, err = application.PlanService.Create("2024-03-01", "Plan", nil, nil, nil)
	require.NoError(t, err)

	var body struct {
		Export models.Export `json:"export"`
	}
	status := doJSON(t, fiberApp, http.MethodGet, "/api/export", nil, &body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, body.Export.MemoCount)
	assert.Equal(t, 1, body.Export.PlanCount)
	require.Len(t, body.Export.Memos, 1)
	assert.True(t, body.Export.Memos[0].Archived)
	assert.NotZero(t, body.Export.ExportedTs)
}

func TestMetricsEndpoint(t *testing.T) {
	fiberApp, application := setupTestApp(t)

	_, err := application.MemoService.Create("counted", nil, nil)
	require.NoError(t, err)

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "tesla_notes_store_operations_total")
}

func TestServerTime(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	var body map[string]interface{}
	status := doJSON(t, fiberApp, http.MethodGet, "/api/time?timezone=Nowhere/Invalid", nil, &body)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Nowhere/Invalid", body["timezone"])
	assert.NotEmpty(t, body["iso"])
}
