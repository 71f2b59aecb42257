package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type sessionService struct {
	credRepo  repository.CredentialRepository
	guestRepo repository.GuestCartRepository
	tokenSvc  service.TokenService
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionService creates the session guard every authenticated flow
// runs through before touching the network.
func NewSessionService(
	credRepo repository.CredentialRepository,
	guestRepo repository.GuestCartRepository,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		credRepo:  credRepo,
		guestRepo: guestRepo,
		tokenSvc:  tokenSvc,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	stored, err := s.credRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoCredential) {
			return nil, nil
		}
		// A credential we cannot read is as good as none, but unlike a
		// missing one it means the stored state is broken. Reset it.
		s.teardown(ctx, "unreadable credential")
		return nil, domainerrors.ErrSessionExpired
	}

	// Always re-derive the claims from the raw token rather than trusting
	// the snapshot taken at login time.
	session, err := s.tokenSvc.Decode(stored.Token)
	if err != nil {
		s.teardown(ctx, "undecodable token")
		return nil, domainerrors.ErrSessionExpired
	}

	if session.ExpiredAt(s.now()) {
		s.teardown(ctx, "token expired")
		return nil, domainerrors.ErrSessionExpired
	}

	return session, nil
}

func (s *sessionService) RequireSession(ctx context.Context) (*entity.Session, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domainerrors.ErrLoginRequired
	}
	return session, nil
}

func (s *sessionService) RequireStaff(ctx context.Context) (*entity.Session, error) {
	session, err := s.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		return nil, domainerrors.ErrStaffOnly
	}
	return session, nil
}

// teardown clears both local keys in one sweep so a dead session never
// leaves a half-cleared state behind.
func (s *sessionService) teardown(ctx context.Context, reason string) {
	s.logger.Warn("tearing down local session", slog.String("reason", reason))
	if err := s.credRepo.Clear(ctx); err != nil {
		s.logger.Error("failed to clear credential", slog.Any("error", err))
	}
	if err := s.guestRepo.Clear(ctx); err != nil {
		s.logger.Error("failed to clear guest cart", slog.Any("error", err))
	}
}
