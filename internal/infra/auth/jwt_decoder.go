// Package auth provides the concrete credential decoder for the client.
package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

type jwtDecoder struct {
	parser *jwt.Parser
}

// NewJWTDecoder is the constructor for the client-side token decoder.
// The client never holds a signing secret, so tokens are parsed without
// signature verification: the decode exists to read identity, role and
// expiry, and the server re-checks the signature on every API call anyway.
func NewJWTDecoder() service.TokenService {
	return &jwtDecoder{parser: jwt.NewParser()}
}

// Decode parses the bearer token into session state.
func (d *jwtDecoder) Decode(tokenString string) (*entity.Session, error) {
	token, _, err := d.parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "parse credential")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("credential carries no claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("credential carries no expiry")
	}

	session := &entity.Session{
		Token:     tokenString,
		Username:  stringClaim(claims, "username"),
		Name:      stringClaim(claims, "name"),
		Role:      entity.RoleUser,
		ExpiresAt: exp.Time,
	}
	if role := entity.Role(stringClaim(claims, "role")); role.IsValid() {
		session.Role = role
	}
	if session.Username == "" {
		session.Username = stringClaim(claims, "sub")
	}

	return session, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)

	return value
}
