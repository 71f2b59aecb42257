package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogPage is one page of products. HasMore is derived from page size:
// a short page means the catalog is exhausted.
type CatalogPage struct {
	Products []*entity.Product
	Page     int
	HasMore  bool
}

// CatalogUsecase browses the product catalog.
type CatalogUsecase interface {
	Browse(ctx context.Context, page int) (*CatalogPage, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}
