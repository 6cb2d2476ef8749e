package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/frankiejoetabarrino/punisher/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionMiddleware classifies the request as a registered or guest
// session. A valid Bearer token issued by the auth collaborator marks a
// registered session; anything else (no header, bad token, unknown user)
// falls back to the shared guest profile, mirroring how the app treats
// unauthenticated visitors. Credential issuing itself lives outside this
// service.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := registeredUserID(c); ok {
			if _, err := services.GetUserByID(userID); err == nil {
				c.Set("userID", userID)
				c.Set("guest", false)
				c.Next()
				return
			}
		}

		guest, err := services.GetOrCreateGuest()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "guest session unavailable"})
			return
		}
		c.Set("userID", guest.ID)
		c.Set("guest", true)
		c.Next()
	}
}

func registeredUserID(c *gin.Context) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64) // JSON numbers decode as float64
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
