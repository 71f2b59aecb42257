package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrNoCredential is returned when no credential is persisted locally.
var ErrNoCredential = errors.New("no credential stored")

// CredentialRepository persists the authenticated credential (token plus
// decoded identity, role and expiry) under the well-known session key.
type CredentialRepository interface {
	// Load reads the persisted session. Returns ErrNoCredential when the
	// key is absent; corrupt data is reported as an error so the caller
	// can treat it as a logout trigger.
	Load(ctx context.Context) (*entity.Session, error)

	// Save overwrites the persisted session.
	Save(ctx context.Context, session *entity.Session) error

	// Clear removes the session key. Idempotent.
	Clear(ctx context.Context) error
}
