package prometheus_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/internal/common"
	"github.com/timebank-lab/backend/pkg/prometheus"
)

func TestNewHandler(t *testing.T) {
	common.PromCounters[common.HTTPRequestTotal].WithLabelValues("GET", "/getPosts", "0").Inc()
	common.PromCounters[common.ActivityCreatedTotal].WithLabelValues("accept").Inc()

	server := httptest.NewServer(prometheus.NewHandler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), common.HTTPRequestTotal)
	require.Contains(t, string(body), `activity_created_total{type="accept"}`)
	require.Contains(t, string(body), "go_goroutines")
}

func TestNewRegistry(t *testing.T) {
	common.PromCounters[common.HTTPRequestTotal].WithLabelValues("POST", "/acceptThread", "0").Inc()
	common.PromCounters[common.ActivityCreatedTotal].WithLabelValues("accept").Inc()
	common.PromCounters[common.ActivityPublishFailedTotal].WithLabelValues("ACTIVITY_CREATED").Inc()

	families, err := prometheus.NewRegistry().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}

	require.True(t, names[common.HTTPRequestTotal])
	require.True(t, names[common.ActivityCreatedTotal])
	require.True(t, names[common.ActivityPublishFailedTotal])
}
