package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hireboard/internal/common"
)

func TestGenerateAndParse(t *testing.T) {
	provider := NewJWTProvider("secret")
	userID := common.NewUUID()

	token, expiresAt, err := provider.Generate(userID, RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected expiry in the future, got %v", expiresAt)
	}
	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID.String() || claims.Role != RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTProvider("one").Generate(common.NewUUID(), RoleApplicant, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewJWTProvider("two").Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	provider := NewJWTProvider("secret")
	provider.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := provider.Generate(common.NewUUID(), RoleRecruiter, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	provider.now = time.Now
	if _, err := provider.Parse(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestGenerateRejectsUnknownRole(t *testing.T) {
	if _, _, err := NewJWTProvider("secret").Generate(common.NewUUID(), Role("owner"), time.Hour); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
