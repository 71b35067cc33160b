package main

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/logging"
	"lifegrid/internal/metrics"
)

func TestServeMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.Generation(3, 2, 1)

	addr, shutdown, err := serveMetrics("127.0.0.1:0", rec, logging.NewNop())
	require.NoError(t, err)

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "life_generations_total 1")
	assert.Contains(t, string(body), "life_population 3")

	shutdown()
	_, err = http.Get("http://" + addr + "/metrics")
	assert.Error(t, err, "server must be closed after shutdown")
}

func TestServeMetricsBadAddress(t *testing.T) {
	_, _, err := serveMetrics("127.0.0.1:-1", metrics.NewRecorder(), logging.NewNop())
	assert.ErrorContains(t, err, "metrics listener")
}
