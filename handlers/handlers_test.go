package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"tesla-notes/app"
	"tesla-notes/config"
	"tesla-notes/config/setup"
	"tesla-notes/database"
	"tesla-notes/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// setupTestApp builds the full route table over a temporary database
func setupTestApp(t *testing.T) (*fiber.App, *app.App) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(database.NewRepository(db), metrics.New(), logger)

	fiberApp := setup.NewFiberApp(&config.Config{Env: "test"}, logger)
	setup.RegisterRoutes(fiberApp, application)

	return fiberApp, application
}

// doJSON sends a request and decodes the JSON response into out when out is non-nil
func doJSON(t *testing.T, fiberApp *fiber.App, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type errorBody struct {
	Error   string `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Tag     string `json:"tag"`
	} `json:"details"`
}

func TestHealth(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	var body map[string]string
	status := doJSON(t, fiberApp, http.MethodGet, "/health", nil, &body)

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])
}
