package middleware

import (
	"net/http"
	"strings"

	"vyronex/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StaffRequired validates the staff bearer token and stores the username in the context.
// Browsers cannot set headers on websocket handshakes, so upgrade requests
// may carry the token in the access_token query parameter instead.
func StaffRequired(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.UnauthorizedResponse(c)
			return
		}

		claims, err := utils.ValidateToken(tokenString, secretKey)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", utils.ErrInvalidToken)
			return
		}

		c.Set(utils.ContextStaffUser, claims.Username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if websocket.IsWebSocketUpgrade(c.Request) {
			token := c.Query("access_token")
			return token, token != ""
		}
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}
