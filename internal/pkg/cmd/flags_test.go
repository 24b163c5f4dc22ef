package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line flag parsing.
)

func TestNewLoggingFlags(t *testing.T) {
	tests := []struct {
		args    []string
		want    zapcore.Level
		wantErr bool
	}{
		{args: nil, want: zapcore.InfoLevel},
		{args: []string{"--log.level", "debug"}, want: zapcore.DebugLevel},
		{args: []string{"--log.level", "ERROR"}, want: zapcore.ErrorLevel},
		{args: []string{"--log.level", "loud"}, wantErr: true},
	}
	for _, tt := range tests {
		app := kingpin.New("testapp", "usage")
		f := NewLoggingFlags(app, "INFO")
		_, err := app.Parse(tt.args)
		if tt.wantErr {
			assert.Error(t, err, "args: %v", tt.args)
			continue
		}
		if assert.NoError(t, err, "args: %v", tt.args) {
			assert.Equal(t, tt.want, f.LogLevel)
		}
	}
}

func TestLoggingFlags_SetupLogger(t *testing.T) {
	f := &LoggingFlags{LogLevel: zapcore.WarnLevel}
	logger, teardown := f.SetupLogger()
	assert.Same(t, logger, zap.L())
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
	teardown()
	assert.True(t, logger != zap.L())
}

func TestNewElasticsearchFlags(t *testing.T) {
	app := kingpin.New("testapp", "usage")
	f := NewElasticsearchFlags(app, time.Second, time.Minute)

	_, err := app.Parse([]string{
		"-e", "http://es-1:9200",
		"-e", "http://es-2:9200",
		"--elasticsearch.retry.max", "30s",
	})
	require.NoError(t, err)
	require.Len(t, f.URLs, 2)
	assert.Equal(t, "http://es-2:9200", f.URLs[1].String())
	assert.Equal(t, time.Second, f.Retry.Init)
	assert.Equal(t, 30*time.Second, f.Retry.Max)
	assert.Len(t, f.ClientOptions(), 2)
}

func TestMonitoringFlags(t *testing.T) {
	app := kingpin.New("testapp", "usage")
	f := NewMonitoringFlags(app, 8080, "INFO")
	_, err := app.Parse([]string{
		"--serve.port", "9000",
		"--serve.ready", "/ready",
	})
	require.NoError(t, err)
	assert.Equal(t, uint16(9000), f.Port)
	assert.Equal(t, "/ready", f.ReadyPath)
	assert.Equal(t, "/livez", f.LivePath)
	assert.Equal(t, "/metrics", f.MetricsPath)
	assert.Equal(t, zapcore.InfoLevel, f.LogLevel)

	reg := prometheus.NewRegistry()
	h := NewHealthchecksHandler(reg, "testapp")
	polled := NewStatusCheck(nil)
	h.AddReadinessCheck("polled", polled.Check)
	srv := f.NewMonitoringServer(h, reg)
	assert.Equal(t, ":9000", srv.Addr)

	get := func(path string) int {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec.Code
	}
	assert.Equal(t, http.StatusOK, get("/livez"))
	assert.Equal(t, http.StatusOK, get("/ready"))
	polled.Set(assert.AnError)
	assert.Equal(t, http.StatusServiceUnavailable, get("/ready"))
	assert.Equal(t, http.StatusOK, get("/metrics"))
}
