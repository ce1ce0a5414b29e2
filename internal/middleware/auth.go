package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"spendwise/internal/config"
	"spendwise/internal/services"
)

// UserIDKey is the context key under which the local user id is stored.
const UserIDKey = "userID"

// IdentityClaims are the claims the external identity provider puts in its
// tokens. Subject carries the stable external user id.
type IdentityClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	jwt.RegisteredClaims
}

func getJWTKey() []byte {
	return []byte(config.Get().AuthJWTSecret)
}

// ParseIdentityToken verifies a provider-issued token and returns its claims.
func ParseIdentityToken(tokenString string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid identity token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("identity token has no subject")
	}
	return claims, nil
}

// AuthMiddleware verifies the identity provider's bearer token and resolves
// the local user record for it, creating the record on first sight. The local
// user id is stored in the context; every downstream read and write is scoped
// to it.
func AuthMiddleware(users services.UserServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := ParseIdentityToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := users.ResolveLocalUser(services.Identity{
			ExternalID: claims.Subject,
			Email:      claims.Email,
			Name:       claims.Name,
			ImageURL:   claims.ImageURL,
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not resolve user"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
