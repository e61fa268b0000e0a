package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWriteError(t *testing.T) {
	r := gin.New()
	r.GET("/things/42", func(c *gin.Context) {
		WriteError(c, http.StatusNotFound, "Thing not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/things/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.Equal(t, "/things/42", env.Path)
	assert.Equal(t, http.MethodGet, env.Method)
	assert.Equal(t, "Thing not found", env.Message)

	ts, err := time.Parse(time.RFC3339Nano, env.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestAbortError_StopsChain(t *testing.T) {
	reached := false
	r := gin.New()
	r.Use(func(c *gin.Context) {
		AbortError(c, http.StatusUnauthorized, "Unauthorized")
	})
	r.GET("/guarded", func(c *gin.Context) {
		reached = true
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	assert.Equal(t, "/guarded", env.Path)
}
