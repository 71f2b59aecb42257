// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase is the session guard. On every operation it re-derives
// session state from the persisted credential: decode, compare expiry to
// now, report. The check is idempotent and side-effect-free while the
// credential is healthy; an expired or undecodable credential clears all
// persisted session keys and surfaces the typed session-expired error for
// the single top-level handler.
type SessionUsecase interface {
	// Current returns the active session, or (nil, nil) for an anonymous
	// visitor. An expired or corrupt credential yields ErrSessionExpired
	// after local state has been cleared.
	Current(ctx context.Context) (*entity.Session, error)

	// RequireSession is Current, but an anonymous visitor is an error
	// (ErrLoginRequired).
	RequireSession(ctx context.Context) (*entity.Session, error)

	// RequireStaff is RequireSession plus an admin role check
	// (ErrStaffOnly).
	RequireStaff(ctx context.Context) (*entity.Session, error)
}
