package httpHandler

import (
	"errors"
	"net/http"

	"mealprep-server/auth"

	"github.com/gin-gonic/gin"
)

// Clients pass their token out of band on every protected call.
const AuthTokenHeader = "x-auth-token"

const userIDKey = "userID"

type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth resolves the caller from the x-auth-token header before the
// wrapped handler runs. Missing, expired and invalid tokens each get their
// own message so clients can tell them apart.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No token, authorization denied",
			})
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			message := "Token is not valid"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token is expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the caller id resolved by RequireAuth.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
