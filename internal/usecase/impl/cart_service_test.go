package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
)

type cartFixture struct {
	session   *mockUC.MockSessionUsecase
	guestRepo *mockRepo.MockGuestCartRepository
	cartGW    *mockSvc.MockCartGateway
	catalogGW *mockSvc.MockCatalogGateway
}

func newCartFixture(t *testing.T) (*cartFixture, *cartService) {
	fx := &cartFixture{
		session:   mockUC.NewMockSessionUsecase(t),
		guestRepo: mockRepo.NewMockGuestCartRepository(t),
		cartGW:    mockSvc.NewMockCartGateway(t),
		catalogGW: mockSvc.NewMockCatalogGateway(t),
	}
	service := NewCartService(fx.session, fx.guestRepo, fx.cartGW, fx.catalogGW, testLogger())
	return fx, service.(*cartService)
}

func authenticated(token string) *entity.Session {
	return &entity.Session{
		Token:     token,
		Username:  "alice",
		Role:      entity.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestCartService_Get_AnonymousReadsGuestCart(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	stored := &entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 2}}}
	fx.session.EXPECT().Current(ctx).Return(nil, nil)
	fx.guestRepo.EXPECT().Load(ctx).Return(stored, nil)

	cart, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored.Lines, cart.Lines)
}

func TestCartService_Get_AuthenticatedReadsRemoteCart(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	remote := &entity.Cart{Lines: []entity.CartLine{{ProductID: 7, Quantity: 1}}}
	fx.session.EXPECT().Current(ctx).Return(authenticated("tok"), nil)
	fx.cartGW.EXPECT().Fetch(ctx, "tok").Return(remote, nil)

	cart, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, remote.Lines, cart.Lines)
}

func TestCartService_Get_ExpiredSessionPropagates(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().Current(ctx).Return(nil, domainerrors.ErrSessionExpired)

	_, err := service.Get(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsAuthExpired(err))
}

func TestCartService_Add_AccumulatesExistingLine(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().Current(ctx).Return(nil, nil)
	fx.guestRepo.EXPECT().Load(ctx).
		Return(&entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 2}}}, nil)

	var saved *entity.Cart
	fx.guestRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, cart *entity.Cart) { saved = cart }).
		Return(nil)

	cart, err := service.Add(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	require.NotNil(t, saved)
	assert.Equal(t, cart.Lines, saved.Lines)
}

func TestCartService_SetQuantity_ZeroRemovesLine(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().Current(ctx).Return(nil, nil)
	fx.guestRepo.EXPECT().Load(ctx).Return(&entity.Cart{Lines: []entity.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}}, nil)
	fx.guestRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := service.SetQuantity(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].ProductID)
}

func TestCartService_Mutate_AuthenticatedWritesFullRemoteState(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().Current(ctx).Return(authenticated("tok"), nil)
	fx.cartGW.EXPECT().Fetch(ctx, "tok").
		Return(&entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 1}}}, nil)

	var replaced *entity.Cart
	fx.cartGW.EXPECT().Replace(ctx, "tok", mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, _ string, cart *entity.Cart) { replaced = cart }).
		Return(nil)

	_, err := service.Add(ctx, 2, 4)
	require.NoError(t, err)
	require.NotNil(t, replaced)
	require.Len(t, replaced.Lines, 2)
	assert.Equal(t, 4, replaced.Lines[1].Quantity)
}

func TestCartService_MergeGuestIntoRemote_PushesAndClears(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	guest := &entity.Cart{Lines: []entity.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}}
	fx.guestRepo.EXPECT().Load(ctx).Return(guest, nil)

	var pushed *entity.Cart
	fx.cartGW.EXPECT().Replace(ctx, "tok", mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, _ string, cart *entity.Cart) { pushed = cart }).
		Return(nil)
	fx.guestRepo.EXPECT().Clear(ctx).Return(nil)

	moved, err := service.MergeGuestIntoRemote(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, moved)
	require.NotNil(t, pushed)
	assert.Equal(t, guest.Lines, pushed.Lines)
}

func TestCartService_MergeGuestIntoRemote_EmptyGuestCartIsNoOp(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	fx.guestRepo.EXPECT().Load(ctx).Return(&entity.Cart{}, nil)

	moved, err := service.MergeGuestIntoRemote(ctx, "tok")
	require.NoError(t, err)
	assert.Zero(t, moved)
	fx.cartGW.AssertNotCalled(t, "Replace")
}

func TestCartService_MergeGuestIntoRemote_PushFailureKeepsGuestCart(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	fx.guestRepo.EXPECT().Load(ctx).
		Return(&entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 2}}}, nil)
	fx.cartGW.EXPECT().Replace(ctx, "tok", mock.AnythingOfType("*entity.Cart")).
		Return(errors.New("connection refused"))

	moved, err := service.MergeGuestIntoRemote(ctx, "tok")
	require.Error(t, err)
	assert.Zero(t, moved)
	fx.guestRepo.AssertNotCalled(t, "Clear")
}

func TestCartService_GetDetailed_JoinsCatalogPerLine(t *testing.T) {
	fx, service := newCartFixture(t)
	ctx := context.Background()

	fx.session.EXPECT().Current(ctx).Return(nil, nil)
	fx.guestRepo.EXPECT().Load(ctx).Return(&entity.Cart{Lines: []entity.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 9, Quantity: 1},
	}}, nil)

	fx.catalogGW.EXPECT().GetProduct(ctx, int64(1)).
		Return(&entity.Product{ID: 1, Name: "Kopi Susu", Price: 18000}, nil)
	fx.catalogGW.EXPECT().GetProduct(ctx, int64(9)).
		Return(nil, errors.New("product not found"))

	items, err := service.GetDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Kopi Susu", items[0].Product.Name)
	assert.Nil(t, items[1].Product)
	assert.Equal(t, 1, items[1].Line.Quantity)
}
