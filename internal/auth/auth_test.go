package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "auth-test-secret"

func gatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected", Middleware(secret, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

func request(t *testing.T, token string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/protected", nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	gatedRouter().ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareMissingToken(t *testing.T) {
	rec := request(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareGarbageToken(t *testing.T) {
	rec := request(t, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareWrongSecret(t *testing.T) {
	token, err := Sign("some-other-secret", "1", AdminRole, time.Hour)
	require.NoError(t, err)

	rec := request(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareExpiredToken(t *testing.T) {
	token, err := Sign(secret, "1", AdminRole, -time.Minute)
	require.NoError(t, err)

	rec := request(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareInsufficientRole(t *testing.T) {
	token, err := Sign(secret, "1", "viewer", time.Hour)
	require.NoError(t, err)

	rec := request(t, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiddlewareAdmits(t *testing.T) {
	token, err := Sign(secret, "42", AdminRole, time.Hour)
	require.NoError(t, err)

	rec := request(t, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
