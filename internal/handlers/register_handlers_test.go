package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/coin_converter/internal/core/services"
	"github.com/SscSPs/coin_converter/internal/dto"
	"github.com/SscSPs/coin_converter/internal/handlers"
	"github.com/SscSPs/coin_converter/internal/middleware"
	"github.com/SscSPs/coin_converter/internal/platform/config"
	"github.com/SscSPs/coin_converter/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
)

func newTestRouter(t *testing.T, cfg *config.Config, rate string) (*gin.Engine, *metrics.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))

	var ipLimiter *limiter.Limiter
	if rate != "" {
		var err error
		ipLimiter, err = middleware.NewIPLimiter(rate)
		require.NoError(t, err)
	}

	r := gin.New()
	r.Use(middleware.Metrics(manager))
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(manager), ipLimiter, manager.Handler())
	return r, manager
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRegisterRoutes_Health(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{}, "")

	w := serve(r, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRegisterRoutes_Home(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{}, "")

	w := serve(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Coin converter API")
}

func TestRegisterRoutes_EndToEndConversions(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{}, "")

	w := serve(r, "/api/v1/converter/convert-currency/18786")
	require.Equal(t, http.StatusOK, w.Code)
	var combined dto.CurrencyBillsAndCoinsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &combined))
	assert.Equal(t, dto.CurrencyBillsAndCoinsResponse{
		OneHundred: 1, Fifty: 1, Twenty: 1, Ten: 1, Five: 1, Two: 1, One: 0,
		HalfDollar: 1, Quarter: 1, Dime: 1, Nickel: 0, Penny: 1,
	}, combined)

	w = serve(r, "/api/v1/converter/convert-currency-to-coins/1")
	require.Equal(t, http.StatusOK, w.Code)
	var coins dto.CurrencyCoinsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coins))
	assert.Equal(t, dto.CurrencyCoinsResponse{Penny: 1}, coins)

	w = serve(r, "/api/v1/converter/convert-currency-to-bills/1")
	require.Equal(t, http.StatusOK, w.Code)
	var bills dto.CurrencyBillsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bills))
	assert.Equal(t, dto.CurrencyBillsResponse{Cents: 1}, bills)
}

func TestRegisterRoutes_RateLimit(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{}, "2-M")

	assert.Equal(t, http.StatusOK, serve(r, "/api/v1/converter/convert-currency/100").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/api/v1/converter/convert-currency-to-coins/100").Code)

	w := serve(r, "/api/v1/converter/convert-currency-to-bills/100")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	// Health is outside the limited group.
	assert.Equal(t, http.StatusOK, serve(r, "/health").Code)
}

func TestRegisterRoutes_Metrics(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{}, "")

	require.Equal(t, http.StatusOK, serve(r, "/api/v1/converter/convert-currency-to-bills/12345").Code)
	require.Equal(t, http.StatusBadRequest, serve(r, "/api/v1/converter/convert-currency-to-bills/0").Code)

	w := serve(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `coin_converter_api_conversions_total{kind="bills"} 1`)
	assert.Contains(t, body, `coin_converter_api_conversion_remainder_cents_total 45`)
	assert.True(t, strings.Contains(body, `route="/api/v1/converter/convert-currency-to-bills/:cents"`))
	assert.Contains(t, body, `status_code="400"`)
}

func TestRegisterRoutes_NoMetricsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{}, services.NewServiceContainer(nil), nil, nil)

	assert.Equal(t, http.StatusNotFound, serve(r, "/metrics").Code)
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{IsProduction: false}, "")

	w := serve(r, "/swagger/doc.json")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/converter/convert-currency/{cents}")
}

func TestRegisterRoutes_NoSwaggerInProduction(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{IsProduction: true}, "")

	assert.Equal(t, http.StatusNotFound, serve(r, "/swagger/doc.json").Code)
}
