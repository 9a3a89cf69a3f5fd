package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abizer007/EcoThreads/pkg/helpers"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *goredis.Client, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	r := gin.New()
	r.GET("/protected", Auth(client, jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("userID")})
	})
	return r, client, jwt
}

func seedSession(t *testing.T, client *goredis.Client, userID, sid string) {
	t.Helper()
	err := client.HSet(context.Background(), "user:session:"+userID, map[string]any{
		"user_id": userID,
		"email":   "alice@example.com",
		"name":    "Alice",
		"sid":     sid,
	}).Err()
	require.NoError(t, err)
}

func TestAuth_ValidToken(t *testing.T) {
	r, client, jwt := setupAuthRouter(t)

	token, _, err := jwt.GenerateAccessToken("u1", "sid-1")
	require.NoError(t, err)
	seedSession(t, client, "u1", "sid-1")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuth_MissingHeader(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	r, client, jwt := setupAuthRouter(t)

	token, _, err := jwt.GenerateAccessToken("u1", "sid-1")
	require.NoError(t, err)
	seedSession(t, client, "u1", "sid-1")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token) // no Bearer prefix
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_NoSession(t *testing.T) {
	r, _, jwt := setupAuthRouter(t)

	token, _, err := jwt.GenerateAccessToken("u1", "sid-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_SessionIDMismatch(t *testing.T) {
	r, client, jwt := setupAuthRouter(t)

	token, _, err := jwt.GenerateAccessToken("u1", "sid-old")
	require.NoError(t, err)
	seedSession(t, client, "u1", "sid-new")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
