package logging

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/testingcanx/docsite/internal/config"
)

func TestNew(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New(config.LogConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/docs", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, len("short and stout"), fields["bytes"])
	assert.Equal(t, true, fields["htmx"])
}

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rec := httptest.NewRecorder()
	ErrorHandler(zap.New(core))(rec, httptest.NewRequest(http.MethodGet, "/boom", nil), errors.New("kaput"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "kaput")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kaput", logs.All()[0].ContextMap()["error"])
}
