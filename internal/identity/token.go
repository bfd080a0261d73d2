package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the portion of the identity service's access token we
// consume. The email claim is the verified address.
type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// parseAccessToken validates the HS256 signature and expiry of an access
// token and extracts the verified identity.
func parseAccessToken(tokenString, secret string) (Identity, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid {
		return Identity{}, fmt.Errorf("invalid access token")
	}
	if claims.Email == "" {
		return Identity{}, fmt.Errorf("access token carries no email claim")
	}
	return Identity{Subject: claims.Subject, Email: claims.Email}, nil
}
