package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/metrics"
)

func TestEventosDeNegocio(t *testing.T) {
	m := metrics.New()
	m.OrderStatusChanged("PRINTING", "COMPLETED")
	m.OrderStatusChanged("PRINTING", "COMPLETED")
	m.SaleRecorded(decimal.NewFromInt(150))
	m.PaymentStatusChanged("COMPLETED")

	expected := `
# HELP jprint_sales_revenue_total Ingresos acumulados de las ventas registradas (INR).
# TYPE jprint_sales_revenue_total counter
jprint_sales_revenue_total 150
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "jprint_sales_revenue_total"))

	n, err := testutil.GatherAndCount(m.Registry(), "jprint_orders_status_changes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "una serie por par from/to")
}

func TestHandler_ExponeMetricasHTTP(t *testing.T) {
	m := metrics.New()
	done := m.RequestStarted()
	m.ObserveRequest("GET", "/api/orders/:id", 200, 15*time.Millisecond)
	done()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `jprint_http_requests_total{method="GET",route="/api/orders/:id",status="200"} 1`)
}
