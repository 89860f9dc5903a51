package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courses/internal/app/models/dto"
	"github.com/yigit/courses/internal/pkg/apperrors"
	"github.com/yigit/courses/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  dto.ErrorCode
	}{
		{name: "not found", err: apperrors.ErrCourseNotFound, wantCode: http.StatusNotFound, wantErr: dto.ErrorCodeResourceNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.ErrResourceNotFound), wantCode: http.StatusNotFound, wantErr: dto.ErrorCodeResourceNotFound},
		{name: "validation", err: apperrors.NewValidationError("name", "name cannot be empty"), wantCode: http.StatusBadRequest, wantErr: dto.ErrorCodeValidationFailed},
		{name: "bad request", err: apperrors.NewBadRequestError("id must be an integer"), wantCode: http.StatusBadRequest, wantErr: dto.ErrorCodeBadRequest},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantErr: dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/courses/1/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_ValidationField(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/courses/", nil)

	HandleAPIError(c, apperrors.NewValidationError("name", "name cannot be empty"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "name", resp.Error.Field)
	assert.Equal(t, "name cannot be empty", resp.Error.Details)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(0.0001, 2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(0, 0))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	lgr := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(lgr))
	r.GET("/courses/", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/?name=Ivan", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/courses/?name=Ivan", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics()

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/courses/:id/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, p := range []string{"/courses/1/", "/courses/2/"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/courses/:id/", "200")))
}
