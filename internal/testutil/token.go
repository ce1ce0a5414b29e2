package testutil

import (
	"testing"
	"time"

	"spendwise/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// SignIdentityToken mints a token the way the external identity provider
// would, signed with the configured shared secret.
func SignIdentityToken(t *testing.T, externalID, email, name string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   externalID,
		"email": email,
		"name":  name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Get().AuthJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign identity token: %v", err)
	}
	return signed
}
