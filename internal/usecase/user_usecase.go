package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// --- Input DTOs ---

// LoginInput defines the data required for a shopper to log in.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the new session plus the outcome of the one-time
// guest cart merge that runs at the anonymous-to-authenticated transition.
type AuthOutput struct {
	Session *entity.Session

	// GuestLinesMerged counts cart lines absorbed into the remote cart.
	GuestLinesMerged int

	// MergeFailed is set when a non-empty guest cart could not be pushed.
	// The guest cart is left intact locally so the next login attempt can
	// retry; callers should tell the user their cart was not carried over.
	MergeFailed bool
}

// UserUsecase defines login, registration and logout.
// This is the contract the delivery layer depends on.
type UserUsecase interface {
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Register(ctx context.Context, input service.RegisterInput) (*AuthOutput, error)

	// Logout clears every locally persisted session key. Purely local; the
	// bearer token is simply forgotten.
	Logout(ctx context.Context) error
}
