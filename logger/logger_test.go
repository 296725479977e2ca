package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	Configure(Config{Level: level, Output: buf, Service: "test", Version: "v0"})
	t.Cleanup(func() { Configure(Config{Level: "disabled"}) })
	return buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		out = append(out, entry)
	}
	return out
}

func TestConfigureLevel(t *testing.T) {
	buf := captureLogs(t, "warn")

	l := WithComponent("unit")
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
	assert.Equal(t, "unit", lines[0]["component"])
	assert.Equal(t, "test", lines[0]["service"])
	assert.Equal(t, "v0", lines[0]["version"])
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	buf := captureLogs(t, "chatty")

	l := Base()
	l.Debug().Msg("dropped")
	l.Info().Msg("kept")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := ContextWithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t, "info")

	r := gin.New()
	r.Use(RequestID(), AccessLog())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestIDFromContext(c.Request.Context())
		c.String(http.StatusTeapot, "pong")
	})

	t.Run("generates an id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, seen)

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, id, lines[0]["request_id"])
		assert.Equal(t, float64(http.StatusTeapot), lines[0]["status"])
		assert.Equal(t, "warn", lines[0]["level"])
	})

	t.Run("keeps an inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "given")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "given", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "given", seen)
	})
}
