package metric_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/http/metric"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metric.New(reg)

	m.RequestsTotal.WithLabelValues("GET", "/api/products", "200").Inc()
	m.RequestsTotal.WithLabelValues("GET", "/api/products", "200").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/products", "200")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "catalog_http_requests_total")
	assert.Contains(t, names, "catalog_http_inflight_requests")
}

func TestNewTwiceOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metric.New(prometheus.NewRegistry())
		metric.New(prometheus.NewRegistry())
	})
}
