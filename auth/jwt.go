package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed token binding a session id to the selected
// profile. There is no credential step: selecting a profile is the whole
// authentication flow, and the token just carries the selection.
func GenerateToken(secret string, sessionID, userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid":     sessionID,
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a token and extracts the session and profile ids.
func ParseToken(secret, tokenString string) (sessionID, userID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid {
		return "", "", errors.New("token invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid claims")
	}
	sessionID, _ = claims["sid"].(string)
	userID, _ = claims["user_id"].(string)
	if sessionID == "" || userID == "" {
		return "", "", errors.New("invalid claims")
	}
	return sessionID, userID, nil
}
