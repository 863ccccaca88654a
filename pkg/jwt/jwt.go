package jwt

import (
	"errors"
	"time"

	"go-hospital-management/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by every issued token: subject is the username, Role drives
// authorization, TokenID is a per-token uuid. Tokens are stateless; there is
// no revocation list, a token stays valid until its natural expiry.
type Claims struct {
	Role    string `json:"role"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	if cfg.AccessExpiry <= 0 {
		cfg.AccessExpiry = 15 * time.Minute
	}
	return &JWTService{config: cfg}
}

// Generate issues a signed HS256 access token for the given identity and role.
func (s *JWTService) Generate(username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:    role,
		TokenID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// Validate parses and verifies a token string. It fails on bad signatures,
// non-HMAC signing methods, malformed tokens, and expired claims.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}
