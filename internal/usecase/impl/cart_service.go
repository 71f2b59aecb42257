package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type cartService struct {
	session   usecase.SessionUsecase
	guestRepo repository.GuestCartRepository
	cartGW    service.CartGateway
	catalogGW service.CatalogGateway
	logger    *slog.Logger
}

// NewCartService creates the dual-mode cart store. Anonymous sessions
// read and write the local guest cart; authenticated sessions go through
// the remote cart gateway.
func NewCartService(
	session usecase.SessionUsecase,
	guestRepo repository.GuestCartRepository,
	cartGW service.CartGateway,
	catalogGW service.CatalogGateway,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		session:   session,
		guestRepo: guestRepo,
		cartGW:    cartGW,
		catalogGW: catalogGW,
		logger:    logger,
	}
}

func (s *cartService) Get(ctx context.Context) (*entity.Cart, error) {
	session, err := s.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return s.guestRepo.Load(ctx)
	}
	return s.cartGW.Fetch(ctx, session.Token)
}

func (s *cartService) GetDetailed(ctx context.Context) ([]usecase.CartItem, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]usecase.CartItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		item := usecase.CartItem{Line: line}
		product, err := s.catalogGW.GetProduct(ctx, line.ProductID)
		if err != nil {
			// The catalog join is best effort; a line whose product has
			// gone away still shows up with its quantity.
			s.logger.Warn("cart line has no catalog entry",
				slog.Int64("productId", line.ProductID), slog.Any("error", err))
		} else {
			item.Product = product
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *cartService) Add(ctx context.Context, productID int64, quantity int) (*entity.Cart, error) {
	return s.mutate(ctx, func(cart *entity.Cart) {
		cart.Add(productID, quantity)
	})
}

func (s *cartService) SetQuantity(ctx context.Context, productID int64, quantity int) (*entity.Cart, error) {
	return s.mutate(ctx, func(cart *entity.Cart) {
		cart.SetQuantity(productID, quantity)
	})
}

func (s *cartService) Remove(ctx context.Context, productID int64) (*entity.Cart, error) {
	return s.SetQuantity(ctx, productID, 0)
}

// mutate applies fn to the current cart and persists the full resulting
// state to whichever side owns it.
func (s *cartService) mutate(ctx context.Context, fn func(*entity.Cart)) (*entity.Cart, error) {
	session, err := s.session.Current(ctx)
	if err != nil {
		return nil, err
	}

	if session == nil {
		cart, err := s.guestRepo.Load(ctx)
		if err != nil {
			return nil, err
		}
		fn(cart)
		if err := s.guestRepo.Save(ctx, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}

	cart, err := s.cartGW.Fetch(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	fn(cart)
	if err := s.cartGW.Replace(ctx, session.Token, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) MergeGuestIntoRemote(ctx context.Context, token string) (int, error) {
	guest, err := s.guestRepo.Load(ctx)
	if err != nil {
		return 0, err
	}
	if guest.IsEmpty() {
		return 0, nil
	}

	guest.Normalize()
	if err := s.cartGW.Replace(ctx, token, guest); err != nil {
		return 0, err
	}

	if err := s.guestRepo.Clear(ctx); err != nil {
		// The push went through; a lingering local copy only matters for
		// the next merge, which would re-send the same lines.
		s.logger.Warn("guest cart merged but local copy not cleared", slog.Any("error", err))
	}
	return len(guest.Lines), nil
}
