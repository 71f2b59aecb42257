package impl

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type userService struct {
	authGW    service.AuthGateway
	tokenSvc  service.TokenService
	credRepo  repository.CredentialRepository
	guestRepo repository.GuestCartRepository
	cart      usecase.CartUsecase
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewUserService creates the auth flow. On a successful login or
// registration it stores the credential and hands the guest cart to the
// merge protocol.
func NewUserService(
	authGW service.AuthGateway,
	tokenSvc service.TokenService,
	credRepo repository.CredentialRepository,
	guestRepo repository.GuestCartRepository,
	cart usecase.CartUsecase,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		authGW:    authGW,
		tokenSvc:  tokenSvc,
		credRepo:  credRepo,
		guestRepo: guestRepo,
		cart:      cart,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrCredentialsRequired
	}

	token, err := s.authGW.Login(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, token)
}

func (s *userService) Register(ctx context.Context, input service.RegisterInput) (*usecase.AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrCredentialsRequired
	}

	token, err := s.authGW.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, token)
}

// establish decodes the fresh token, persists it, and runs the one-time
// guest cart merge before control returns to the caller.
func (s *userService) establish(ctx context.Context, token string) (*usecase.AuthOutput, error) {
	session, err := s.tokenSvc.Decode(token)
	if err != nil {
		return nil, err
	}

	if err := s.credRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	out := &usecase.AuthOutput{Session: session}
	moved, err := s.cart.MergeGuestIntoRemote(ctx, token)
	if err != nil {
		// Login itself succeeded. Keep the guest cart on disk so the
		// next login retries the merge.
		s.logger.Warn("guest cart merge failed", slog.Any("error", err))
		out.MergeFailed = true
		return out, nil
	}
	out.GuestLinesMerged = moved
	return out, nil
}

func (s *userService) Logout(ctx context.Context) error {
	var firstErr error
	if err := s.credRepo.Clear(ctx); err != nil {
		firstErr = err
	}
	if err := s.guestRepo.Clear(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		s.logger.Error("logout left local state behind", slog.Any("error", firstErr))
		return firstErr
	}
	return nil
}
