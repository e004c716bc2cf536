package httpHandler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mealprep-server/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *auth.TokenService) *gin.Engine {
	router := gin.New()
	mw := NewAuthMiddleware(tokens)
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": CurrentUserID(c)})
	})
	return router
}

func doProtected(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(AuthTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := newProtectedRouter(auth.NewTokenService("test-secret"))

	rec := doProtected(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token, authorization denied")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := newProtectedRouter(auth.NewTokenService("test-secret"))

	rec := doProtected(router, "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token is not valid")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	router := newProtectedRouter(auth.NewTokenService(secret))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: "user-123",
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	rec := doProtected(router, tokenString)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token is expired")
}

func TestRequireAuth_ValidTokenResolvesCaller(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := newProtectedRouter(tokens)

	token, err := tokens.Issue("user-123")
	require.NoError(t, err)

	rec := doProtected(router, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-123")
}
