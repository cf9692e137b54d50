package services

import (
	"context"
	"math"

	"style-shop/models"
	"style-shop/repositories"
	"style-shop/utils"
)

const (
	defaultPageSize      = 20
	relatedProductsLimit = 4
)

type ProductService struct {
	productStore ProductStore
}

func NewProductService() *ProductService {
	return &ProductService{
		productStore: repositories.NewProductRepository(),
	}
}

// ListProducts translates the query parameters into a storage filter and
// returns one page of formatted products. An unrecognized sortBy silently
// falls back to createdAt.
func (s *ProductService) ListProducts(ctx context.Context, query models.ProductQuery) (*models.ProductListView, error) {
	page, limit := normalizePaging(query.Page, query.Limit)

	filter := repositories.ProductFilter{
		Category:  query.Category,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
		InStock:   query.InStock,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	products, total, err := s.productStore.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.ProductListView{
		Products:   formatProducts(products),
		Pagination: paginationMeta(page, limit, total),
	}, nil
}

func (s *ProductService) GetProductBySku(ctx context.Context, sku string) (*models.ProductDetailView, error) {
	productID, ok := utils.ParseSKU(sku)
	if !ok {
		return nil, models.InvalidSKUError()
	}

	product, err := s.productStore.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, models.ProductNotFoundError()
	}

	related, err := s.productStore.FindRelated(ctx, product.CategoryID, product.ID, relatedProductsLimit)
	if err != nil {
		return nil, err
	}

	relatedViews := make([]models.ProductSummaryView, 0, len(related))
	for i := range related {
		relatedViews = append(relatedViews, utils.FormatProductSummary(&related[i]))
	}

	return &models.ProductDetailView{
		Product:         utils.FormatProductWithReviews(product),
		RelatedProducts: relatedViews,
	}, nil
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryName string, query models.ProductQuery) (*models.CategoryProductsView, error) {
	category, err := s.productStore.FindCategoryByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, models.CategoryNotFoundError()
	}

	page, limit := normalizePaging(query.Page, query.Limit)

	filter := repositories.ProductFilter{
		Category:  categoryName,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
		InStock:   query.InStock,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	products, total, err := s.productStore.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.CategoryProductsView{
		Products:   formatProducts(products),
		Pagination: paginationMeta(page, limit, total),
		Category:   formatCategory(category),
	}, nil
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]models.CategoryView, error) {
	categories, err := s.productStore.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, formatCategory(&categories[i]))
	}
	return views, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	return page, limit
}

func paginationMeta(page, limit, total int) models.PaginationMeta {
	return models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

func formatProducts(products []models.Product) []models.ProductView {
	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		views = append(views, utils.FormatProduct(&products[i]))
	}
	return views
}

func formatCategory(category *models.Category) models.CategoryView {
	return models.CategoryView{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         utils.Slugify(category.Name),
		Description:  category.Description,
		Image:        category.Image,
		ProductCount: category.ProductCount,
	}
}
