package impl

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type catalogService struct {
	catalogGW service.CatalogGateway
	pageLimit int
}

// NewCatalogService creates the catalog browsing flow.
func NewCatalogService(cfg *config.Config, catalogGW service.CatalogGateway) usecase.CatalogUsecase {
	return &catalogService{catalogGW: catalogGW, pageLimit: cfg.API.PageLimit}
}

func (s *catalogService) Browse(ctx context.Context, page int) (*usecase.CatalogPage, error) {
	if page < 1 {
		page = 1
	}
	products, err := s.catalogGW.ListProducts(ctx, page, s.pageLimit)
	if err != nil {
		return nil, err
	}
	return &usecase.CatalogPage{
		Products: products,
		Page:     page,
		HasMore:  len(products) == s.pageLimit,
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return s.catalogGW.GetProduct(ctx, id)
}
