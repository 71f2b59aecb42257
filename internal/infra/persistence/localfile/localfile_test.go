package localfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.State.Dir = t.TempDir()

	return cfg
}

func TestGuestCartRepository_LoadMissingFileIsEmptyCart(t *testing.T) {
	repo := NewGuestCartRepository(testConfig(t))

	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestGuestCartRepository_LoadCorruptFileIsEmptyCart(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.State.Dir, guestCartFile), []byte("{not json"), 0o600))

	repo := NewGuestCartRepository(cfg)
	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestGuestCartRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewGuestCartRepository(testConfig(t))
	ctx := context.Background()

	cart := &entity.Cart{Lines: []entity.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}}
	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, cart.Lines, loaded.Lines)
}

func TestGuestCartRepository_SaveIsIdempotent(t *testing.T) {
	repo := NewGuestCartRepository(testConfig(t))
	ctx := context.Background()

	cart := &entity.Cart{Lines: []entity.CartLine{{ProductID: 7, Quantity: 3}}}
	require.NoError(t, repo.Save(ctx, cart))
	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart.Lines, loaded.Lines)
}

func TestGuestCartRepository_LoadDropsNonPositiveLines(t *testing.T) {
	cfg := testConfig(t)
	raw := []byte(`[{"productId":1,"quantity":2},{"productId":2,"quantity":0},{"productId":3,"quantity":-4}]`)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.State.Dir, guestCartFile), raw, 0o600))

	repo := NewGuestCartRepository(cfg)
	cart, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, cart.Lines)
}

func TestGuestCartRepository_ClearRemovesKey(t *testing.T) {
	cfg := testConfig(t)
	repo := NewGuestCartRepository(cfg)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 1}}}))
	require.NoError(t, repo.Clear(ctx))

	_, err := os.Stat(filepath.Join(cfg.State.Dir, guestCartFile))
	assert.True(t, os.IsNotExist(err))

	// Clearing again is fine.
	require.NoError(t, repo.Clear(ctx))
}

func TestCredentialRepository_LoadMissingReturnsErrNoCredential(t *testing.T) {
	repo := NewCredentialRepository(testConfig(t))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoCredential)
}

func TestCredentialRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewCredentialRepository(testConfig(t))
	ctx := context.Background()

	session := &entity.Session{
		Token:     "header.payload.sig",
		Username:  "budi",
		Name:      "Budi",
		Role:      entity.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Token, loaded.Token)
	assert.Equal(t, session.Username, loaded.Username)
	assert.Equal(t, session.Role, loaded.Role)
	assert.True(t, session.ExpiresAt.Equal(loaded.ExpiresAt))
}

func TestCredentialRepository_LoadCorruptIsError(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.State.Dir, sessionFile), []byte("oops"), 0o600))

	repo := NewCredentialRepository(cfg)
	_, err := repo.Load(context.Background())
	assert.Error(t, err)
}

func TestCredentialRepository_ClearIsIdempotent(t *testing.T) {
	repo := NewCredentialRepository(testConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "t"}))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNoCredential)
}
