package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
)

type userFixture struct {
	authGW    *mockSvc.MockAuthGateway
	tokenSvc  *mockSvc.MockTokenService
	credRepo  *mockRepo.MockCredentialRepository
	guestRepo *mockRepo.MockGuestCartRepository
	cart      *mockUC.MockCartUsecase
}

func newUserFixture(t *testing.T) (*userFixture, usecase.UserUsecase) {
	fx := &userFixture{
		authGW:    mockSvc.NewMockAuthGateway(t),
		tokenSvc:  mockSvc.NewMockTokenService(t),
		credRepo:  mockRepo.NewMockCredentialRepository(t),
		guestRepo: mockRepo.NewMockGuestCartRepository(t),
		cart:      mockUC.NewMockCartUsecase(t),
	}
	service := NewUserService(fx.authGW, fx.tokenSvc, fx.credRepo, fx.guestRepo, fx.cart, testLogger())
	return fx, service
}

func TestUserService_Login_MergesGuestCart(t *testing.T) {
	fx, svc := newUserFixture(t)
	ctx := context.Background()

	session := &entity.Session{
		Token:     "tok",
		Username:  "alice",
		Role:      entity.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.authGW.EXPECT().Login(ctx, "alice", "secret123").Return("tok", nil)
	fx.tokenSvc.EXPECT().Decode("tok").Return(session, nil)
	fx.credRepo.EXPECT().Save(ctx, session).Return(nil)
	fx.cart.EXPECT().MergeGuestIntoRemote(ctx, "tok").Return(2, nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Session.Username)
	assert.Equal(t, 2, out.GuestLinesMerged)
	assert.False(t, out.MergeFailed)
}

func TestUserService_Login_EmptyCredentials(t *testing.T) {
	fx, svc := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "", Password: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsRequired))
	fx.authGW.AssertNotCalled(t, "Login")
}

func TestUserService_Login_RejectedCredentials(t *testing.T) {
	fx, svc := newUserFixture(t)
	ctx := context.Background()

	fx.authGW.EXPECT().Login(ctx, "alice", "wrongpass").
		Return("", domainerrors.ErrInvalidCredentials)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrongpass"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.credRepo.AssertNotCalled(t, "Save")
}

func TestUserService_Login_MergeFailureDoesNotFailLogin(t *testing.T) {
	fx, svc := newUserFixture(t)
	ctx := context.Background()

	session := &entity.Session{Token: "tok", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}
	fx.authGW.EXPECT().Login(ctx, "alice", "secret123").Return("tok", nil)
	fx.tokenSvc.EXPECT().Decode("tok").Return(session, nil)
	fx.credRepo.EXPECT().Save(ctx, session).Return(nil)
	fx.cart.EXPECT().MergeGuestIntoRemote(ctx, "tok").
		Return(0, errors.New("connection refused"))

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, out.MergeFailed)
	assert.Zero(t, out.GuestLinesMerged)
}

func TestUserService_Register_EstablishesSession(t *testing.T) {
	fx, svc := newUserFixture(t)
	ctx := context.Background()

	input := service.RegisterInput{Name: "Alice", Username: "alice", Password: "secret123"}
	session := &entity.Session{Token: "tok", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}

	fx.authGW.EXPECT().Register(ctx, input).Return("tok", nil)
	fx.tokenSvc.EXPECT().Decode("tok").Return(session, nil)
	fx.credRepo.EXPECT().Save(ctx, session).Return(nil)
	fx.cart.EXPECT().MergeGuestIntoRemote(ctx, "tok").Return(0, nil)

	out, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Session.Username)
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	fx, svc := newUserFixture(t)
	ctx := context.Background()

	input := service.RegisterInput{Name: "Alice", Username: "alice", Password: "abc"}
	_, err := svc.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialsRequired))
	fx.authGW.AssertNotCalled(t, "Register")
}

func TestUserService_Logout_ClearsBothKeys(t *testing.T) {
	fx, svc := newUserFixture(t)
	ctx := context.Background()

	fx.credRepo.EXPECT().Clear(ctx).Return(nil)
	fx.guestRepo.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}
