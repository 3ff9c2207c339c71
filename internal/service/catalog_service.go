package service

import (
	"context"

	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/models"
	"github.com/agalyaece/e-commerce-website/internal/repository"
)

// CatalogService handles product, brand and category management plus the
// read path the storefront and the cart engine consume.
type CatalogService struct {
	products     repository.ProductRepository
	taxonomy     repository.TaxonomyRepository
	cache        repository.ProductCache
	cacheEnabled bool
	logger       *logging.Logger
}

// NewCatalogService creates a catalog service. cache may be nil when
// product caching is disabled.
func NewCatalogService(
	products repository.ProductRepository,
	taxonomy repository.TaxonomyRepository,
	cache repository.ProductCache,
	cacheEnabled bool,
) *CatalogService {
	return &CatalogService{
		products:     products,
		taxonomy:     taxonomy,
		cache:        cache,
		cacheEnabled: cacheEnabled && cache != nil,
		logger:       logging.NewLogger("catalog-service"),
	}
}

// GetProduct retrieves a product, consulting the cache first.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if s.cacheEnabled {
		if p, err := s.cache.Get(ctx, id); err == nil && p != nil {
			return p, nil
		}
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled {
		if err := s.cache.Set(ctx, p); err != nil {
			// Log but don't fail
			s.logger.Error("Failed to cache product", logging.Fields{
				"product_id": p.ID,
				"error":      err.Error(),
			})
		}
	}

	return p, nil
}

// CreateProduct validates and stores a new catalog entry.
func (s *CatalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := ValidateCreateProductRequest(req); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, req)
}

// UpdateProduct replaces a product and invalidates its cache entry.
// Existing cart lines keep their snapshots; the new price applies only to
// adds that happen after the update.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req *models.CreateProductRequest) (*models.Product, error) {
	if err := ValidateCreateProductRequest(req); err != nil {
		return nil, err
	}

	p, err := s.products.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled {
		s.cache.Delete(ctx, id)
	}

	return p, nil
}

// DeleteProduct removes a product and its cache entry.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	if s.cacheEnabled {
		s.cache.Delete(ctx, id)
	}

	return nil
}

// ListProducts pages the catalog with search and taxonomy filters.
func (s *CatalogService) ListProducts(ctx context.Context, filter *models.ProductListFilter) ([]*models.Product, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.products.List(ctx, filter)
}

// CreateBrand adds a brand.
func (s *CatalogService) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	if err := ValidateTaxonomyName("brand", name); err != nil {
		return nil, err
	}
	return s.taxonomy.CreateBrand(ctx, name)
}

// ListBrands returns all brands.
func (s *CatalogService) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	return s.taxonomy.ListBrands(ctx)
}

// DeleteBrand removes a brand.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	return s.taxonomy.DeleteBrand(ctx, id)
}

// CreateCategory adds a category.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if err := ValidateTaxonomyName("category", name); err != nil {
		return nil, err
	}
	return s.taxonomy.CreateCategory(ctx, name)
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.taxonomy.ListCategories(ctx)
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.taxonomy.DeleteCategory(ctx, id)
}
