package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionService_Current_Anonymous(t *testing.T) {
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockGuestRepo := mockRepo.NewMockGuestCartRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := NewSessionService(mockCredRepo, mockGuestRepo, mockTokenSvc, testLogger())

	ctx := context.Background()
	mockCredRepo.EXPECT().Load(ctx).Return(nil, repository.ErrNoCredential)

	session, err := service.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Current_ValidSession(t *testing.T) {
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockGuestRepo := mockRepo.NewMockGuestCartRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := NewSessionService(mockCredRepo, mockGuestRepo, mockTokenSvc, testLogger())

	ctx := context.Background()
	stored := &entity.Session{Token: "tok", Username: "alice"}
	decoded := &entity.Session{
		Token:     "tok",
		Username:  "alice",
		Role:      entity.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mockCredRepo.EXPECT().Load(ctx).Return(stored, nil)
	mockTokenSvc.EXPECT().Decode("tok").Return(decoded, nil)

	session, err := service.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "alice", session.Username)
}

func TestSessionService_Current_ExpiredTokenClearsBothKeys(t *testing.T) {
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockGuestRepo := mockRepo.NewMockGuestCartRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := NewSessionService(mockCredRepo, mockGuestRepo, mockTokenSvc, testLogger())

	ctx := context.Background()
	stored := &entity.Session{Token: "tok"}
	decoded := &entity.Session{
		Token:     "tok",
		Username:  "alice",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	mockCredRepo.EXPECT().Load(ctx).Return(stored, nil)
	mockTokenSvc.EXPECT().Decode("tok").Return(decoded, nil)
	mockCredRepo.EXPECT().Clear(ctx).Return(nil)
	mockGuestRepo.EXPECT().Clear(ctx).Return(nil)

	session, err := service.Current(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsAuthExpired(err))
	assert.Nil(t, session)
}

func TestSessionService_Current_CorruptCredentialClearsBothKeys(t *testing.T) {
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockGuestRepo := mockRepo.NewMockGuestCartRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := NewSessionService(mockCredRepo, mockGuestRepo, mockTokenSvc, testLogger())

	ctx := context.Background()
	mockCredRepo.EXPECT().Load(ctx).Return(nil, errors.New("unexpected end of JSON input"))
	mockCredRepo.EXPECT().Clear(ctx).Return(nil)
	mockGuestRepo.EXPECT().Clear(ctx).Return(nil)

	_, err := service.Current(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsAuthExpired(err))
}

func TestSessionService_Current_UndecodableToken(t *testing.T) {
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockGuestRepo := mockRepo.NewMockGuestCartRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := NewSessionService(mockCredRepo, mockGuestRepo, mockTokenSvc, testLogger())

	ctx := context.Background()
	mockCredRepo.EXPECT().Load(ctx).Return(&entity.Session{Token: "garbage"}, nil)
	mockTokenSvc.EXPECT().Decode("garbage").Return(nil, errors.New("token contains an invalid number of segments"))
	mockCredRepo.EXPECT().Clear(ctx).Return(nil)
	mockGuestRepo.EXPECT().Clear(ctx).Return(nil)

	_, err := service.Current(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsAuthExpired(err))
}

func TestSessionService_RequireSession_Anonymous(t *testing.T) {
	mockCredRepo := mockRepo.NewMockCredentialRepository(t)
	mockGuestRepo := mockRepo.NewMockGuestCartRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := NewSessionService(mockCredRepo, mockGuestRepo, mockTokenSvc, testLogger())

	ctx := context.Background()
	mockCredRepo.EXPECT().Load(ctx).Return(nil, repository.ErrNoCredential)

	_, err := service.RequireSession(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLoginRequired))
}

func TestSessionService_RequireStaff(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		wantErr error
	}{
		{name: "admin passes", role: entity.RoleAdmin, wantErr: nil},
		{name: "shopper rejected", role: entity.RoleUser, wantErr: domainerrors.ErrStaffOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)
			mockGuestRepo := mockRepo.NewMockGuestCartRepository(t)
			mockTokenSvc := mockSvc.NewMockTokenService(t)
			service := NewSessionService(mockCredRepo, mockGuestRepo, mockTokenSvc, testLogger())

			ctx := context.Background()
			decoded := &entity.Session{
				Token:     "tok",
				Role:      tt.role,
				ExpiresAt: time.Now().Add(time.Hour),
			}
			mockCredRepo.EXPECT().Load(ctx).Return(&entity.Session{Token: "tok"}, nil)
			mockTokenSvc.EXPECT().Decode("tok").Return(decoded, nil)

			session, err := service.RequireStaff(ctx)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.True(t, session.IsAdmin())
		})
	}
}
