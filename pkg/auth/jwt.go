package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
)

const issuer = "courier-settlement"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

type Claims struct {
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
	PartyID int64  `json:"party_id,omitempty"`
	jwt.StandardClaims
}

// Actor returns the caller the claims describe.
func (c *Claims) Actor() domain.Actor {
	return domain.Actor{ID: c.UserID, Role: domain.Role(c.Role), PartyID: c.PartyID}
}

func (c *Claims) valid() bool {
	if c.UserID == 0 || c.Issuer != issuer {
		return false
	}
	switch domain.Role(c.Role) {
	case domain.RoleAdmin:
		return true
	case domain.RoleCourier, domain.RoleEcommerce, domain.RoleRider:
		return c.PartyID != 0
	}
	return false
}

// JWTService validates HS256 tokens signed with a shared secret. Tokens are
// issued elsewhere; GenerateJWT exists for tooling and tests.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(actor domain.Actor, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID:  actor.ID,
		Role:    string(actor.Role),
		PartyID: actor.PartyID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !claims.valid() {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
