package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid api token")

// IssueAPIToken signs a `{user: username}` payload with the server-held
// secret. The token identifies the account on stateless API calls.
func IssueAPIToken(username, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user": username})
	return token.SignedString([]byte(secret))
}

// VerifyAPIToken checks the signature and returns the encoded username.
func VerifyAPIToken(token, secret string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	username, ok := claims["user"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}
