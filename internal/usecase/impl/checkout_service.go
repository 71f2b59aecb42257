package impl

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type checkoutService struct {
	session    usecase.SessionUsecase
	cart       usecase.CartUsecase
	catalogGW  service.CatalogGateway
	addressGW  service.AddressGateway
	checkoutGW service.CheckoutGateway
	qrSvc      service.QRCodeService
	fees       entity.FeeTable
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewCheckoutService creates the pricing and submission flow. The fee
// table comes from config so deployments can reprice without a rebuild.
func NewCheckoutService(
	cfg *config.Config,
	session usecase.SessionUsecase,
	cart usecase.CartUsecase,
	catalogGW service.CatalogGateway,
	addressGW service.AddressGateway,
	checkoutGW service.CheckoutGateway,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		session:    session,
		cart:       cart,
		catalogGW:  catalogGW,
		addressGW:  addressGW,
		checkoutGW: checkoutGW,
		qrSvc:      qrSvc,
		fees:       cfg.Payment.FeeTable(),
		validate:   validator.New(),
		logger:     logger,
	}
}

func (s *checkoutService) Quote(ctx context.Context, method entity.PaymentMethod) (*entity.Quote, error) {
	rule, ok := s.fees[method]
	if !ok {
		return nil, domainerrors.ErrUnknownPaymentMethod
	}

	cart, err := s.cart.Get(ctx)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, line := range cart.Lines {
		product, err := s.catalogGW.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		subtotal += product.Price * int64(line.Quantity)
	}

	fee := rule.Apply(subtotal)
	return &entity.Quote{Subtotal: subtotal, Fee: fee, Total: subtotal + fee}, nil
}

func (s *checkoutService) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	session, err := s.session.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.addressGW.List(ctx, session.Token)
}

func (s *checkoutService) SaveAddress(ctx context.Context, input usecase.AddressInput) (*entity.Address, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrAddressRequired
	}

	session, err := s.session.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.addressGW.Create(ctx, session.Token, &entity.Address{
		Label:         input.Label,
		RecipientName: input.RecipientName,
		Phone:         input.Phone,
		Street:        input.Street,
	})
}

func (s *checkoutService) Submit(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	// Both preconditions fail before anything goes over the wire.
	if input.AddressID == 0 {
		return nil, domainerrors.ErrAddressRequired
	}
	if _, ok := s.fees[input.Method]; !ok {
		return nil, domainerrors.ErrUnknownPaymentMethod
	}

	session, err := s.session.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	out := &usecase.CheckoutOutput{}
	if quote, err := s.Quote(ctx, input.Method); err != nil {
		// The on-screen figure is advisory; a stale catalog must not
		// block the purchase itself.
		s.logger.Warn("could not price cart before submission", slog.Any("error", err))
	} else {
		out.Quote = *quote
	}

	result, err := s.checkoutGW.Submit(ctx, session.Token, input.AddressID, input.Method)
	if err != nil {
		return nil, err
	}
	out.PaymentURL = result.PaymentURL
	out.OrderNum = result.OrderNum

	if input.Method == entity.PaymentQRIS && result.PaymentURL != "" {
		png, err := s.qrSvc.GeneratePaymentQR(result.PaymentURL)
		if err != nil {
			s.logger.Warn("could not render payment QR code", slog.Any("error", err))
		} else {
			out.QRCodePNG = png
		}
	}
	return out, nil
}
