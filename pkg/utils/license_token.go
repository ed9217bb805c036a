package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type LicenseClaims struct {
	Key      string   `json:"key"`
	Features []string `json:"features"`
	jwt.RegisteredClaims
}

// CreateLicenseToken signs a short-lived token carrying the licensed
// feature set, so feature-gated endpoints can be checked without
// hitting the store on every request.
func CreateLicenseToken(secret, key string, features []string, ttl time.Duration) (string, error) {
	claims := &LicenseClaims{
		Key:      key,
		Features: features,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateLicenseToken(secret, tokenString string) (*LicenseClaims, error) {
	claims := &LicenseClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid license token")
	}
	return claims, nil
}

func (c *LicenseClaims) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}
