package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type orderService struct {
	session usecase.SessionUsecase
	orderGW service.OrderGateway
	logger  *slog.Logger
}

// NewOrderService creates the order tracking flow.
func NewOrderService(
	session usecase.SessionUsecase,
	orderGW service.OrderGateway,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{session: session, orderGW: orderGW, logger: logger}
}

func (s *orderService) ListMine(ctx context.Context) ([]*entity.Order, error) {
	session, err := s.session.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.orderGW.ListMine(ctx, session.Token)
}

func (s *orderService) GetMine(ctx context.Context, id int64) (*entity.Order, error) {
	session, err := s.session.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.orderGW.GetMine(ctx, session.Token, id)
}

func (s *orderService) FindByOrderNum(ctx context.Context, orderNum string) (*entity.Order, error) {
	orders, err := s.ListMine(ctx)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if order.OrderNum == orderNum {
			return order, nil
		}
	}
	return nil, domainerrors.ErrOrderNotFound
}

func (s *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	session, err := s.session.RequireStaff(ctx)
	if err != nil {
		return nil, err
	}
	return s.orderGW.ListAll(ctx, session.Token)
}

func (s *orderService) Get(ctx context.Context, id int64) (*entity.Order, error) {
	session, err := s.session.RequireStaff(ctx)
	if err != nil {
		return nil, err
	}
	return s.orderGW.Get(ctx, session.Token, id)
}

func (s *orderService) SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	session, err := s.session.RequireStaff(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderGW.Get(ctx, session.Token, id)
	if err != nil {
		return nil, err
	}

	if err := s.orderGW.SetStatus(ctx, session.Token, id, status); err != nil {
		return nil, err
	}

	// Reflect the transition without a second fetch.
	order.Status = status
	return order, nil
}
