package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager handles generation and validation of admin bearer tokens.
type JWTManager struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTManager(secret string, tokenTTL time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TokenTTL: tokenTTL}
}

// Claims carried by every admin token. The registered ID (jti) keys the
// logout blacklist in Redis.
type Claims struct {
	AdminID string `json:"aid"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Generate signs a token for the given admin. Returns the token string and
// its expiry.
func (m *JWTManager) Generate(adminID, email string) (string, time.Time, error) {
	exp := time.Now().Add(m.TokenTTL)
	claims := &Claims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse validates a token string and returns its claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
