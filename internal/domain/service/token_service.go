package service

import (
	"storefront/internal/domain/entity"
)

// TokenService decodes a bearer credential into session state. The client
// holds no signing secret, so decoding is structural only: claims are read
// and the expiry compared locally, never verified against the server. A
// token the server has revoked is only discovered on the next rejected call.
type TokenService interface {
	// Decode parses the token and returns the session it encodes. It fails
	// when the token is structurally invalid; expiry checking is left to
	// the caller so the check stays side-effect-free.
	Decode(token string) (*entity.Session, error)
}
