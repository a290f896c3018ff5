package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TokenKeeper/internal/config"
)

// testConfig: конфиг с файловым хранилищем токена во временном каталоге,
// чтобы несколько вызовов команд в одном тесте видели один и тот же токен.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:   serverURL,
		TokenStore:  "file",
		TokenDir:    t.TempDir(),
		Locale:      "es-ES",
		TimeZone:    "UTC",
		LoginPath:   "/login.html",
		HTTPTimeout: 5 * time.Second,
	}
}

// captureOut перенаправляет Out в буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	t.Cleanup(func() { Out = old })
	return &buf
}

func newJSONServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
