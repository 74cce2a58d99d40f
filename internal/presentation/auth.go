package presentation

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AuthConfig struct {
	Secret   string
	TTLHours int `yaml:"ttl_hours"`
}

// IssueToken mints a signed bearer token whose subject is the user id.
func IssueToken(cfg AuthConfig, userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Duration(cfg.TTLHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken validates a bearer token and returns the user id it carries.
func ParseToken(cfg AuthConfig, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("token carries no subject")
	}

	return sub, nil
}
