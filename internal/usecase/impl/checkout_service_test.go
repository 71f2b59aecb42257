package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
)

type checkoutFixture struct {
	session    *mockUC.MockSessionUsecase
	cart       *mockUC.MockCartUsecase
	catalogGW  *mockSvc.MockCatalogGateway
	addressGW  *mockSvc.MockAddressGateway
	checkoutGW *mockSvc.MockCheckoutGateway
	qrSvc      *mockSvc.MockQRCodeService
}

func newCheckoutFixture(t *testing.T) (*checkoutFixture, usecase.CheckoutUsecase) {
	fx := &checkoutFixture{
		session:    mockUC.NewMockSessionUsecase(t),
		cart:       mockUC.NewMockCartUsecase(t),
		catalogGW:  mockSvc.NewMockCatalogGateway(t),
		addressGW:  mockSvc.NewMockAddressGateway(t),
		checkoutGW: mockSvc.NewMockCheckoutGateway(t),
		qrSvc:      mockSvc.NewMockQRCodeService(t),
	}
	svc := NewCheckoutService(
		&config.Config{},
		fx.session, fx.cart, fx.catalogGW, fx.addressGW, fx.checkoutGW, fx.qrSvc,
		testLogger(),
	)
	return fx, svc
}

func (fx *checkoutFixture) expectCartWorth30000(ctx context.Context) {
	fx.cart.EXPECT().Get(ctx).Return(&entity.Cart{Lines: []entity.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}}, nil)
	fx.catalogGW.EXPECT().GetProduct(ctx, int64(1)).
		Return(&entity.Product{ID: 1, Price: 10000}, nil)
	fx.catalogGW.EXPECT().GetProduct(ctx, int64(2)).
		Return(&entity.Product{ID: 2, Price: 10000}, nil)
}

func TestCheckoutService_Quote_FlatFee(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()
	fx.expectCartWorth30000(ctx)

	quote, err := svc.Quote(ctx, entity.PaymentVirtualAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), quote.Subtotal)
	assert.Equal(t, int64(4440), quote.Fee)
	assert.Equal(t, int64(34440), quote.Total)
}

func TestCheckoutService_Quote_PercentFeeRoundsUp(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()
	fx.expectCartWorth30000(ctx)

	quote, err := svc.Quote(ctx, entity.PaymentQRIS)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), quote.Subtotal)
	assert.Equal(t, int64(210), quote.Fee)
	assert.Equal(t, int64(30210), quote.Total)
}

func TestCheckoutService_Quote_UnknownMethod(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := svc.Quote(ctx, entity.PaymentMethod("cheque"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownPaymentMethod))
	fx.cart.AssertNotCalled(t, "Get")
}

func TestCheckoutService_Submit_MissingAddress(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, usecase.CheckoutInput{Method: entity.PaymentQRIS})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressRequired))
	fx.checkoutGW.AssertNotCalled(t, "Submit")
}

func TestCheckoutService_Submit_UnknownMethod(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, usecase.CheckoutInput{AddressID: 3, Method: entity.PaymentMethod("cash")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownPaymentMethod))
	fx.checkoutGW.AssertNotCalled(t, "Submit")
}

func TestCheckoutService_Submit_VirtualAccount(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().RequireSession(ctx).Return(authenticated("tok"), nil)
	fx.expectCartWorth30000(ctx)
	fx.checkoutGW.EXPECT().Submit(ctx, "tok", int64(3), entity.PaymentVirtualAccount).
		Return(&service.CheckoutResult{
			PaymentURL: "https://pay.example.com/inv/123",
			OrderNum:   "ORD-123",
		}, nil)

	out, err := svc.Submit(ctx, usecase.CheckoutInput{AddressID: 3, Method: entity.PaymentVirtualAccount})
	require.NoError(t, err)
	assert.Equal(t, "ORD-123", out.OrderNum)
	assert.Equal(t, "https://pay.example.com/inv/123", out.PaymentURL)
	assert.Equal(t, int64(34440), out.Quote.Total)
	assert.Nil(t, out.QRCodePNG)
	fx.qrSvc.AssertNotCalled(t, "GeneratePaymentQR")
}

func TestCheckoutService_Submit_QRISRendersCode(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().RequireSession(ctx).Return(authenticated("tok"), nil)
	fx.expectCartWorth30000(ctx)
	fx.checkoutGW.EXPECT().Submit(ctx, "tok", int64(3), entity.PaymentQRIS).
		Return(&service.CheckoutResult{
			PaymentURL: "https://pay.example.com/qris/456",
			OrderNum:   "ORD-456",
		}, nil)
	fx.qrSvc.EXPECT().GeneratePaymentQR("https://pay.example.com/qris/456").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	out, err := svc.Submit(ctx, usecase.CheckoutInput{AddressID: 3, Method: entity.PaymentQRIS})
	require.NoError(t, err)
	assert.Equal(t, int64(30210), out.Quote.Total)
	assert.NotEmpty(t, out.QRCodePNG)
}

func TestCheckoutService_Submit_StaleCatalogDoesNotBlock(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().RequireSession(ctx).Return(authenticated("tok"), nil)
	fx.cart.EXPECT().Get(ctx).Return(nil, errors.New("connection refused"))
	fx.checkoutGW.EXPECT().Submit(ctx, "tok", int64(3), entity.PaymentVirtualAccount).
		Return(&service.CheckoutResult{OrderNum: "ORD-789"}, nil)

	out, err := svc.Submit(ctx, usecase.CheckoutInput{AddressID: 3, Method: entity.PaymentVirtualAccount})
	require.NoError(t, err)
	assert.Equal(t, "ORD-789", out.OrderNum)
	assert.Zero(t, out.Quote.Total)
}

func TestCheckoutService_SaveAddress_MissingFields(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := svc.SaveAddress(ctx, usecase.AddressInput{Label: "Home"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressRequired))
	fx.addressGW.AssertNotCalled(t, "Create")
}

func TestCheckoutService_SaveAddress_CreatesProfile(t *testing.T) {
	fx, svc := newCheckoutFixture(t)
	ctx := context.Background()

	input := usecase.AddressInput{
		Label:         "Home",
		RecipientName: "Alice",
		Phone:         "0812000111",
		Street:        "Jl. Sudirman 1",
	}
	fx.session.EXPECT().RequireSession(ctx).Return(authenticated("tok"), nil)
	fx.addressGW.EXPECT().Create(ctx, "tok", &entity.Address{
		Label:         "Home",
		RecipientName: "Alice",
		Phone:         "0812000111",
		Street:        "Jl. Sudirman 1",
	}).Return(&entity.Address{ID: 10, Label: "Home"}, nil)

	addr, err := svc.SaveAddress(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(10), addr.ID)
}
