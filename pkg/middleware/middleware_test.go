package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/cafes/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDMiddleware_GeneratesNewID(t *testing.T) {
	r := newEngine(TraceIDMiddleware())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cafes/1", nil))

	traceID := rec.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, traceID, rec.Body.String())
}

func TestTraceIDMiddleware_UsesProvidedID(t *testing.T) {
	r := newEngine(TraceIDMiddleware())
	provided := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/cafes/1", nil)
	req.Header.Set(TraceIDHeader, provided)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, provided, rec.Header().Get(TraceIDHeader))
}

func TestTraceIDMiddleware_ReplacesMalformedID(t *testing.T) {
	r := newEngine(TraceIDMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/cafes/1", nil)
	req.Header.Set(TraceIDHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(TraceIDHeader))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := newEngine(CORSMiddleware())
	r.OPTIONS("/cafes/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/cafes/1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestMetricsMiddleware_CountsByRoutePattern(t *testing.T) {
	r := newEngine(MetricsMiddleware())
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/cafes/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/cafes/1", "/cafes/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
}
