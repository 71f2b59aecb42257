package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"
)

func catalogConfig(limit int) *config.Config {
	cfg := &config.Config{}
	cfg.API.PageLimit = limit
	return cfg
}

func TestCatalogService_Browse_FullPageHasMore(t *testing.T) {
	mockCatalogGW := mockSvc.NewMockCatalogGateway(t)
	svc := NewCatalogService(catalogConfig(2), mockCatalogGW)

	ctx := context.Background()
	mockCatalogGW.EXPECT().ListProducts(ctx, 1, 2).Return([]*entity.Product{
		{ID: 1}, {ID: 2},
	}, nil)

	page, err := svc.Browse(ctx, 1)
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Equal(t, 1, page.Page)
}

func TestCatalogService_Browse_ShortPageEndsCatalog(t *testing.T) {
	mockCatalogGW := mockSvc.NewMockCatalogGateway(t)
	svc := NewCatalogService(catalogConfig(2), mockCatalogGW)

	ctx := context.Background()
	mockCatalogGW.EXPECT().ListProducts(ctx, 3, 2).Return([]*entity.Product{{ID: 5}}, nil)

	page, err := svc.Browse(ctx, 3)
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Len(t, page.Products, 1)
}

func TestCatalogService_Browse_ClampsPage(t *testing.T) {
	mockCatalogGW := mockSvc.NewMockCatalogGateway(t)
	svc := NewCatalogService(catalogConfig(2), mockCatalogGW)

	ctx := context.Background()
	mockCatalogGW.EXPECT().ListProducts(ctx, 1, 2).Return(nil, nil)

	page, err := svc.Browse(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}
