package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"learnhub_backend/internals/configs"
	authModel "learnhub_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims carried by access tokens. admin_level is only present for admins.
type TokenSubject struct {
	UserID     uuid.UUID
	Role       string
	AdminLevel *int
}

func CreateAccessToken(sub TokenSubject) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}
	claims := jwt.MapClaims{
		"sub":  sub.UserID.String(),
		"role": sub.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(AccessTokenTTL).Unix(),
	}
	if sub.AdminLevel != nil {
		claims["admin_level"] = *sub.AdminLevel
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func CreateRefreshToken(sub TokenSubject) (string, *authModel.RefreshToken, error) {
	if configs.JWTRefreshSecret == "" {
		return "", nil, errors.New("missing refresh secret")
	}
	expiresAt := time.Now().Add(RefreshTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub.UserID.String(),
		"rol": sub.Role,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", nil, err
	}
	record := &authModel.RefreshToken{
		UserID:    sub.UserID,
		UserRole:  sub.Role,
		Token:     RefreshTokenHash(signed),
		ExpiresAt: expiresAt,
	}
	return signed, record, nil
}

// RefreshTokenHash stores an HMAC of the refresh JWT; a DB leak alone is
// then not enough to mint sessions.
func RefreshTokenHash(token string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseRefreshToken verifies the signature and expiry of a refresh JWT and
// returns its subject.
func ParseRefreshToken(tokenString string) (TokenSubject, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return TokenSubject{}, errors.New("invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenSubject{}, errors.New("invalid refresh token")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return TokenSubject{}, errors.New("invalid refresh token subject")
	}
	role, _ := claims["rol"].(string)
	return TokenSubject{UserID: userID, Role: role}, nil
}
