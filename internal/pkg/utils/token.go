package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/satriapw/tolldash/internal/pkg/constants"
)

const authTokenTTL = 24 * time.Hour

// AuthTokenWrapper is the claim payload carried inside the auth token.
type AuthTokenWrapper struct {
	UserID uuid.UUID `json:"user_id"`
	Secret string    `json:"secret,omitempty"`
	jwt.StandardClaims
}

// GenerateAuthToken signs a token for the given wrapper with the configured
// secret.
func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	now := time.Now()
	wrapper.StandardClaims = jwt.StandardClaims{
		Id:        uuid.NewString(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(authTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", fmt.Errorf("failed to sign auth token: %w", err)
	}

	return signed, nil
}

// ParseAuthToken validates the signature and expiry and returns the claims.
func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
