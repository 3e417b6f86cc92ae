package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoforge/backend/config"
	"github.com/videoforge/backend/utils"
)

func TestMain(m *testing.M) {
	config.SetForTesting(config.AppConfig{
		JWTSecret: "0123456789abcdef0123456789abcdef",
		RedisHost: "127.0.0.1",
		RedisPort: 1, // closed port so the blacklist check fails open fast
	})
	os.Exit(m.Run())
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthRequired(), func(ctx *gin.Context) {
		id, _ := UserID(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return router
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "tester", time.Hour)
	require.NoError(t, err)

	router := newAuthTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestAuthRequiredRejections(t *testing.T) {
	router := newAuthTestRouter()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken("u1", "tester", -time.Minute)
	require.NoError(t, err)

	router := newAuthTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
