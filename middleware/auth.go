package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"filingai/utils"
)

// RequireToken validates a bearer JWT signed with the shared secret. There is
// no user store; a valid signature is the whole credential.
func RequireToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.UnauthorizedError(c, "Missing bearer token")
			c.Abort()
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		_, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			utils.UnauthorizedError(c, "Invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
