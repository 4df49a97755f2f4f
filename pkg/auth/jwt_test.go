package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	token, err := jwtService.GenerateJWT(domain.Actor{ID: 7, Role: domain.RoleCourier, PartyID: 2}, time.Now().Add(time.Hour))

	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{ID: 7, Role: domain.RoleCourier, PartyID: 2}, claims.Actor())
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	valid := func(c Claims) Claims {
		c.Issuer = issuer
		c.ExpiresAt = time.Now().Add(time.Hour).Unix()
		return c
	}

	tests := []struct {
		name        string
		setup       func() string
		expectError error
	}{
		{
			name: "Valid courier token",
			setup: func() string {
				return sign(valid(Claims{UserID: 1, Role: "courier", PartyID: 2}), jwt.SigningMethodHS256, []byte(testSecret))
			},
		},
		{
			name: "Admin needs no party",
			setup: func() string {
				return sign(valid(Claims{UserID: 1, Role: "admin"}), jwt.SigningMethodHS256, []byte(testSecret))
			},
		},
		{
			name: "Malformed token",
			setup: func() string {
				return "invalid.token.string"
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Expired token",
			setup: func() string {
				c := valid(Claims{UserID: 1, Role: "courier", PartyID: 2})
				c.ExpiresAt = time.Now().Add(-time.Hour).Unix()
				return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Wrong secret",
			setup: func() string {
				return sign(valid(Claims{UserID: 1, Role: "courier", PartyID: 2}), jwt.SigningMethodHS256, []byte("other"))
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Unsigned token",
			setup: func() string {
				return sign(valid(Claims{UserID: 1, Role: "admin"}), jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Unknown role",
			setup: func() string {
				return sign(valid(Claims{UserID: 1, Role: "cashier", PartyID: 2}), jwt.SigningMethodHS256, []byte(testSecret))
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "Party role without party",
			setup: func() string {
				return sign(valid(Claims{UserID: 1, Role: "ecommerce"}), jwt.SigningMethodHS256, []byte(testSecret))
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				c := valid(Claims{UserID: 1, Role: "admin"})
				c.Issuer = "someone-else"
				return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			expectError: ErrInvalidClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}
