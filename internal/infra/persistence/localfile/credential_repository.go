package localfile

import (
	"context"
	"encoding/json"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

type credentialRepository struct {
	dir string
}

// NewCredentialRepository creates a file-backed credential store rooted at
// the configured state directory.
func NewCredentialRepository(cfg *config.Config) repository.CredentialRepository {
	return &credentialRepository{dir: cfg.State.Dir}
}

// Load reads the persisted session. Unlike the guest cart, a corrupt
// credential is an error: the caller treats it as a logout trigger rather
// than silently continuing with a half-read identity.
func (r *credentialRepository) Load(_ context.Context) (*entity.Session, error) {
	raw, ok, err := readKey(r.dir, sessionFile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNoCredential
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "decode stored credential")
	}
	if session.Token == "" {
		return nil, errors.New("stored credential has no token")
	}

	return &session, nil
}

// Save overwrites the persisted session.
func (r *credentialRepository) Save(_ context.Context, session *entity.Session) error {
	return writeKey(r.dir, sessionFile, session)
}

// Clear removes the session key.
func (r *credentialRepository) Clear(_ context.Context) error {
	return clearKey(r.dir, sessionFile)
}
