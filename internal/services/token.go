package services

import (
	"errors"
	"strconv"
	"time"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tokens are short-lived bearer credentials; clients re-login after expiry.
const tokenTTL = 15 * time.Minute

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte { return []byte(utils.GetEnv("JWT_SECRET", "secret")) }

// Issuer doubles as the audience, matching a single-service deployment.
func jwtIssuer() string { return utils.GetEnv("JWT_ISSUER", "photoshare") }

// GenerateJWT issues a signed token binding the user's immutable id.
func GenerateJWT(userID int64, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.New().String(),
			Issuer:    jwtIssuer(),
			Audience:  jwt.ClaimStrings{jwtIssuer()},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken resolves the acting user id bound to a token. Every failure
// mode (bad signature, expiry, wrong issuer or audience) yields no identity.
func ValidateToken(tokenString string) (int64, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	}, jwt.WithIssuer(jwtIssuer()), jwt.WithAudience(jwtIssuer()), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, apperr.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperr.ErrUnauthorized
	}
	return userID, nil
}
