package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Service interface {
	GenerateAccessToken(userID string, sessionID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// GenerateAccessToken issues an access token bound to an auth session row.
// Revoking the row invalidates the token before it expires.
func (j *JWTService) GenerateAccessToken(userID string, sessionID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"sid":     sessionID,
		"type":    "access",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// Claims extracts the user and session ids from verified access token claims.
func Claims(claims map[string]interface{}) (userID string, sessionID string, err error) {
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return "", "", ErrInvalidToken
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", ErrInvalidToken
	}
	sessionID, ok = claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", "", ErrInvalidToken
	}
	return userID, sessionID, nil
}
