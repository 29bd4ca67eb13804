package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/user-directory/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerPrefix is the exact, case-sensitive scheme prefix of the
// Authorization header.
const bearerPrefix = "Bearer "

// GenerateJWTToken creates a signed HMAC-SHA384 JWT token for the given user.
//
// The token always carries the Subject (sub) claim with the user ID encoded
// as a base-10 string. When tokenDuration is positive the IssuedAt (iat) and
// ExpiresAt (exp) claims are set as well; a zero duration yields a token that
// never expires.
//
// Parameters:
//
//	userID        - ID of the user the token is issued for
//	tokenDuration - how long the token remains valid, 0 for no expiry
//	signKey       - secret key used to sign the token with HMAC-SHA384
//
// Returns:
//
//	models.Token - contains the signed token string and its claims
//	error        - non-nil if the key is empty or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(42, 0, "secret")
func GenerateJWTToken(userID int32, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if signKey == "" || tokenDuration < 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Subject: strconv.FormatInt(int64(userID), 10),
	}
	if tokenDuration > 0 {
		now := time.Now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Algorithm check, only HS384 is accepted
//   - Signature verification using the provided sign key
//   - Expiration (exp) claim check when the claim is present
//   - Subject (sub) claim presence and conversion to an int32 UserID
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS384.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	token := models.Token{Claims: claims, SignedString: tokenString}
	userID, err := token.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	token.UserID = userID

	return token, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// The header must start with the exact prefix "Bearer " followed by a
// non-empty token; anything else reports ok == false.
func ParseBearerToken(authorizationHeader string) (string, bool) {
	token, found := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !found || token == "" {
		return "", false
	}
	return token, true
}
