package auth

import (
	"server/config"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndValidateToken(t *testing.T) {
	config.JWT_SECRET = "test-secret-0123456789"
	token, err := IssueToken()
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	left := time.Until(claims.ExpiresAt.Time)
	if left < 23*time.Hour || left > 24*time.Hour {
		t.Errorf("token lifetime = %v, want ~24h", left)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	config.JWT_SECRET = "test-secret-0123456789"
	expired := signedToken(t, "admin", -time.Hour, config.JWT_SECRET)
	wrongSecret := signedToken(t, "admin", time.Hour, "some-other-secret")
	wrongRole := signedToken(t, "visitor", time.Hour, config.JWT_SECRET)
	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", wrongSecret},
		{"wrong role", wrongRole},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token); err == nil {
				t.Errorf("ValidateToken(%q) succeeded, want error", tt.name)
			}
		})
	}
}

func signedToken(t *testing.T, role string, ttl time.Duration, secret string) string {
	t.Helper()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}
