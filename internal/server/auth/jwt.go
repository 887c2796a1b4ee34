// Package auth issues and validates the HS256 tokens that attribute requests
// to one of the two spaces, and handles passcode hashing.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pairspace/loveos/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Claims carries the standard registered claims plus the authenticated
// space name.
type Claims struct {
	jwt.RegisteredClaims
	Space string
}

func GenerateToken(space string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Space: space,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetSpaceFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Space, nil
}

// HashPasscode hashes a space passcode for storage.
func HashPasscode(passcode string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasscode reports whether the passcode matches the stored hash.
func CheckPasscode(hash, passcode string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
