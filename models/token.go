package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed bearer token together with the data the server
// extracted from it.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that clients send in the Authorization header.
//
// UserID is the parsed "sub" claim.
type Token struct {
	// Claims is the registered claim set carried by the token. Only Subject
	// is always present; IssuedAt and ExpiresAt are set when tokens expire.
	Claims jwt.RegisteredClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int32 `json:"-"`
}

// GetUserID parses the token's "sub" claim as a base-10 int32.
func (t *Token) GetUserID() (int32, error) {
	if t.Claims.Subject == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(t.Claims.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int32: %w", err)
	}

	return int32(userID), nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
