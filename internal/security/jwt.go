package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hireboard/internal/common"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleApplicant Role = "applicant"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleApplicant:
		return true
	}
	return false
}

const issuer = "hireboard"

var ErrInvalidToken = errors.New("invalid token")

type JWTProvider struct {
	secret []byte
	now    func() time.Time
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), now: time.Now}
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

func (p *JWTProvider) Generate(userID common.UUID, role Role, ttl time.Duration) (string, time.Time, error) {
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("unknown role %q", role)
	}
	now := p.now().UTC()
	expiresAt := now.Add(ttl)
	claims := Claims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (p *JWTProvider) Parse(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(token), &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return &claims, nil
}
