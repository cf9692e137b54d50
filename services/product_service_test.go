package services

import (
	"context"
	"testing"

	"style-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() *fakeProductStore {
	products := []*models.Product{}
	for i := 1; i <= 5; i++ {
		products = append(products, &models.Product{
			ID:           i,
			Name:         "Tee",
			Price:        float64(10 * i),
			Stock:        3,
			IsActive:     true,
			CategoryID:   1,
			CategoryName: "T Shirts",
		})
	}
	products = append(products, &models.Product{
		ID:           6,
		Name:         "Parka",
		Price:        120,
		Stock:        2,
		IsActive:     true,
		CategoryID:   2,
		CategoryName: "Outerwear",
	})

	store := newFakeProductStore(products...)
	store.categories = []models.Category{
		{ID: 1, Name: "T Shirts", ProductCount: 5},
		{ID: 2, Name: "Outerwear", ProductCount: 1},
	}
	return store
}

func newProductFixture() (*ProductService, *fakeProductStore) {
	store := catalogFixture()
	return &ProductService{productStore: store}, store
}

func TestListProducts_PaginationMeta(t *testing.T) {
	service, _ := newProductFixture()

	view, err := service.ListProducts(context.Background(), models.ProductQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, view.Products, 2)
	assert.Equal(t, 2, view.Pagination.Page)
	assert.Equal(t, 2, view.Pagination.Limit)
	assert.Equal(t, 6, view.Pagination.Total)
	assert.Equal(t, 3, view.Pagination.TotalPages)
}

func TestListProducts_DefaultsPaging(t *testing.T) {
	service, store := newProductFixture()

	view, err := service.ListProducts(context.Background(), models.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Pagination.Page)
	assert.Equal(t, 20, view.Pagination.Limit)
	assert.Equal(t, 20, store.lastFilter.Limit)
	assert.Equal(t, 0, store.lastFilter.Offset)
}

func TestListProducts_PassesFilterThrough(t *testing.T) {
	service, store := newProductFixture()

	minPrice := 15.0
	inStock := true
	_, err := service.ListProducts(context.Background(), models.ProductQuery{
		Category: "T Shirts",
		MinPrice: &minPrice,
		InStock:  &inStock,
		SortBy:   "price",
	})
	require.NoError(t, err)
	assert.Equal(t, "T Shirts", store.lastFilter.Category)
	assert.Equal(t, &minPrice, store.lastFilter.MinPrice)
	assert.Equal(t, &inStock, store.lastFilter.InStock)
	assert.Equal(t, "price", store.lastFilter.SortBy)
}

func TestGetProductBySku_InvalidSKU(t *testing.T) {
	service, _ := newProductFixture()

	_, err := service.GetProductBySku(context.Background(), "not-a-sku")
	requireKind(t, err, models.KindInvalidSKU)
}

func TestGetProductBySku_NotFound(t *testing.T) {
	service, _ := newProductFixture()

	_, err := service.GetProductBySku(context.Background(), "PROD-099")
	requireKind(t, err, models.KindProductNotFound)
}

func TestGetProductBySku_DetailWithRelated(t *testing.T) {
	service, _ := newProductFixture()

	view, err := service.GetProductBySku(context.Background(), "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", view.Product.Sku)
	assert.Equal(t, "t-shirts", view.Product.Category)

	// Same category, the product itself excluded, capped at four.
	require.Len(t, view.RelatedProducts, 4)
	for _, related := range view.RelatedProducts {
		assert.NotEqual(t, "PROD-001", related.Sku)
		assert.Equal(t, "t-shirts", related.Category)
	}
}

func TestGetProductBySku_ReviewsFormatted(t *testing.T) {
	store := catalogFixture()
	rating := 4.0
	store.products[0].Rating = &rating
	store.products[0].Reviews = []models.Review{
		{ID: 2, ProductID: 1, UserID: 3, UserName: "Sam Doe", Rating: 4, Comment: "Fits well"},
	}
	service := &ProductService{productStore: store}

	view, err := service.GetProductBySku(context.Background(), "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Product.ReviewCount)
	require.Len(t, view.Product.Reviews, 1)
	assert.Equal(t, "review_2", view.Product.Reviews[0].ID)
	assert.Equal(t, "user_3", view.Product.Reviews[0].UserID)
	assert.Equal(t, "Sam Doe", view.Product.Reviews[0].UserName)
}

func TestGetProductsByCategory_NotFound(t *testing.T) {
	service, _ := newProductFixture()

	_, err := service.GetProductsByCategory(context.Background(), "Hats", models.ProductQuery{})
	requireKind(t, err, models.KindCategoryNotFound)
}

func TestGetProductsByCategory_CaseInsensitive(t *testing.T) {
	service, _ := newProductFixture()

	view, err := service.GetProductsByCategory(context.Background(), "t shirts", models.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, "T Shirts", view.Category.Name)
	assert.Equal(t, "t-shirts", view.Category.Slug)
	assert.Len(t, view.Products, 5)
	assert.Equal(t, 5, view.Pagination.Total)
}

func TestGetAllCategories_SlugsAndCounts(t *testing.T) {
	service, _ := newProductFixture()

	views, err := service.GetAllCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "t-shirts", views[0].Slug)
	assert.Equal(t, 5, views[0].ProductCount)
	assert.Equal(t, "outerwear", views[1].Slug)
	assert.Equal(t, 1, views[1].ProductCount)
}
