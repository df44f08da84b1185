package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"backoffice_backend/internals/configs"
)

// IssueAccessToken signs a short-lived HS256 token carrying the user id
// and resolved role.
func IssueAccessToken(userID int64, role string, now time.Time) (string, time.Time, error) {
	exp := now.Add(configs.AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	return signed, exp, err
}

// IssueRefreshToken signs a long-lived token against the refresh secret.
func IssueRefreshToken(userID int64, now time.Time) (string, time.Time, error) {
	exp := now.Add(configs.RefreshTokenTTL)
	claims := jwt.MapClaims{
		"sub":        strconv.FormatInt(userID, 10),
		"token_type": "refresh",
		"iat":        now.Unix(),
		"exp":        exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
	return signed, exp, err
}

// ParseRefreshToken verifies a refresh token and returns the user id.
func ParseRefreshToken(tokenString string) (int64, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}
	if tt, _ := claims["token_type"].(string); tt != "refresh" {
		return 0, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return id, nil
}
