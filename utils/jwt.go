package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"popin/models"
)

var secretKey = []byte("supersecret")

// SetSecret overrides the signing key; called once at startup from config.
func SetSecret(s string) {
	if s != "" {
		secretKey = []byte(s)
	}
}

// GenerateToken issues an HS256 token carrying the user id and role.
func GenerateToken(username string, userID int64, role models.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"userId":   userID,
		"role":     string(role),
		"exp":      time.Now().Add(2 * time.Hour).Unix(),
	})
	return token.SignedString(secretKey)
}

// VerifyToken validates a token and returns the user id and role it carries.
func VerifyToken(token string) (int64, models.Role, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, "", errors.New("could not parse token")
	}
	if !parsed.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	id, ok := claims["userId"].(float64)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	role, _ := claims["role"].(string)

	return int64(id), models.Role(role), nil
}
