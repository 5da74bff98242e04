package jwt

import (
	"errors"
	"fmt"
	"time"

	"educonnect/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSubject = errors.New("token has no subject")
	ErrMissingSecret  = errors.New("signing secret is not configured")
)

func signingKey() ([]byte, error) {
	if config.AppConfig == nil || config.AppConfig.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return []byte(config.AppConfig.JWTSecret), nil
}

// GenerateToken creates a new JWT whose subject is the given identity.
func GenerateToken(identity string) (string, error) {
	if config.AppConfig == nil {
		return "", ErrMissingSecret
	}
	return GenerateTokenWithTTL(identity, config.AppConfig.TokenTTL())
}

// GenerateTokenWithTTL creates a new JWT for identity that expires after ttl.
func GenerateTokenWithTTL(identity string, ttl time.Duration) (string, error) {
	if identity == "" {
		return "", ErrMissingSubject
	}
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub": identity,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(key)
}

// ParseToken verifies an HS256 token and returns the identity in its subject.
func ParseToken(tokenString string) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", ErrMissingSubject
	}
	return subject, nil
}
