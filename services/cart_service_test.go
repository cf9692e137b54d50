package services

import (
	"context"
	"testing"

	"style-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(products ...*models.Product) (*CartService, *fakeCartStore) {
	productStore := newFakeProductStore(products...)
	cartStore := newFakeCartStore(productStore)
	service := &CartService{cartStore: cartStore, productStore: productStore}
	return service, cartStore
}

func testProduct() *models.Product {
	return &models.Product{
		ID:           7,
		Name:         "Denim Jacket",
		Price:        89.99,
		Stock:        10,
		IsActive:     true,
		Sizes:        []string{"S", "M", "L"},
		Colors:       []string{"Blue", "Black"},
		CategoryID:   1,
		CategoryName: "Outerwear",
	}
}

func requireKind(t *testing.T, err error, kind models.ErrorKind) *models.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := models.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestGetCart_CreatesEmptyCartOnFirstAccess(t *testing.T) {
	service, _ := newCartFixture()

	view, err := service.GetCart(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "cart_1", view.ID)
	assert.Equal(t, "user_5", view.UserID)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
}

func TestAddItem_AddsLineWithTotals(t *testing.T) {
	service, _ := newCartFixture(testProduct())

	view, err := service.AddItem(context.Background(), 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "PROD-007", view.Items[0].Product.Sku)
	assert.Equal(t, 179.98, view.Subtotal)
	assert.Equal(t, 179.98, view.Total)
}

func TestAddItem_MergesSameVariantIntoOneLine(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	view, err := service.AddItem(ctx, 1, "PROD-007", 3, "M", "Blue")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestAddItem_DifferentVariantMakesNewLine(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 1, "M", "Blue")
	require.NoError(t, err)

	view, err := service.AddItem(ctx, 1, "PROD-007", 1, "L", "Blue")
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
}

func TestAddItem_InvalidSKU(t *testing.T) {
	service, _ := newCartFixture(testProduct())

	_, err := service.AddItem(context.Background(), 1, "BAD-007", 1, "M", "Blue")
	requireKind(t, err, models.KindInvalidSKU)
}

func TestAddItem_ProductNotFound(t *testing.T) {
	service, _ := newCartFixture(testProduct())

	_, err := service.AddItem(context.Background(), 1, "PROD-099", 1, "M", "Blue")
	requireKind(t, err, models.KindProductNotFound)
}

func TestAddItem_InactiveProduct(t *testing.T) {
	product := testProduct()
	product.IsActive = false
	service, _ := newCartFixture(product)

	_, err := service.AddItem(context.Background(), 1, "PROD-007", 1, "M", "Blue")
	requireKind(t, err, models.KindProductInactive)
}

func TestAddItem_ZeroStockMessage(t *testing.T) {
	product := testProduct()
	product.Stock = 0
	service, _ := newCartFixture(product)

	_, err := service.AddItem(context.Background(), 1, "PROD-007", 1, "M", "Blue")
	appErr := requireKind(t, err, models.KindOutOfStock)
	assert.Equal(t, "Product is out of stock", appErr.Message)
}

func TestAddItem_InsufficientStockMessage(t *testing.T) {
	product := testProduct()
	product.Stock = 3
	service, _ := newCartFixture(product)

	_, err := service.AddItem(context.Background(), 1, "PROD-007", 5, "M", "Blue")
	appErr := requireKind(t, err, models.KindOutOfStock)
	assert.Equal(t, "Insufficient stock. Available: 3, Requested: 5", appErr.Message)
}

func TestAddItem_MergedQuantityCheckedAgainstStock(t *testing.T) {
	product := testProduct()
	product.Stock = 5
	service, cartStore := newCartFixture(product)
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 3, "M", "Blue")
	require.NoError(t, err)

	// 3 already in the cart; 3 more would merge to 6 against a stock of 5.
	_, err = service.AddItem(ctx, 1, "PROD-007", 3, "M", "Blue")
	appErr := requireKind(t, err, models.KindOutOfStock)
	assert.Equal(t, "Insufficient stock. Available: 5, Requested: 6", appErr.Message)

	// The rejected add must not have touched the existing line.
	cart := cartStore.carts[1]
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItem_MissingVariants(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 1, "", "Blue")
	appErr := requireKind(t, err, models.KindMissingVariant)
	assert.Equal(t, "selectedSize is required", appErr.Message)

	_, err = service.AddItem(ctx, 1, "PROD-007", 1, "M", "  ")
	appErr = requireKind(t, err, models.KindMissingVariant)
	assert.Equal(t, "selectedColor is required", appErr.Message)
}

func TestAddItem_InvalidVariants(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 1, "XXL", "Blue")
	appErr := requireKind(t, err, models.KindInvalidVariant)
	assert.Equal(t, "Invalid size selected. Available sizes: S, M, L", appErr.Message)

	_, err = service.AddItem(ctx, 1, "PROD-007", 1, "M", "Green")
	appErr = requireKind(t, err, models.KindInvalidVariant)
	assert.Equal(t, "Invalid color selected. Available colors: Blue, Black", appErr.Message)
}

func TestUpdateItemQuantity_Succeeds(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	added, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	view, err := service.UpdateItemQuantity(ctx, 1, 1, 4)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, added.Items[0].ID, view.Items[0].ID)
	assert.Equal(t, 4, view.Items[0].Quantity)
}

func TestUpdateItemQuantity_RejectsNonPositive(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		_, err := service.UpdateItemQuantity(ctx, 1, 1, quantity)
		requireKind(t, err, models.KindInvalidQuantity)
	}
}

func TestUpdateItemQuantity_ItemNotFound(t *testing.T) {
	service, _ := newCartFixture(testProduct())

	_, err := service.UpdateItemQuantity(context.Background(), 1, 99, 2)
	requireKind(t, err, models.KindItemNotFound)
}

func TestUpdateItemQuantity_ForbiddenForOtherUser(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	_, err = service.UpdateItemQuantity(ctx, 2, 1, 3)
	requireKind(t, err, models.KindForbidden)
}

func TestUpdateItemQuantity_ExceedsStock(t *testing.T) {
	product := testProduct()
	product.Stock = 4
	service, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	_, err = service.UpdateItemQuantity(ctx, 1, 1, 9)
	appErr := requireKind(t, err, models.KindOutOfStock)
	assert.Equal(t, "Insufficient stock. Available: 4, Requested: 9", appErr.Message)
}

func TestRemoveItem_Succeeds(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	view, err := service.RemoveItem(ctx, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
}

func TestRemoveItem_ForbiddenForOtherUser(t *testing.T) {
	service, _ := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	_, err = service.RemoveItem(ctx, 2, 1)
	requireKind(t, err, models.KindForbidden)
}

func TestRemoveItem_ItemNotFound(t *testing.T) {
	service, _ := newCartFixture(testProduct())

	_, err := service.RemoveItem(context.Background(), 1, 42)
	requireKind(t, err, models.KindItemNotFound)
}

func TestClearCart_EmptiesItems(t *testing.T) {
	service, cartStore := newCartFixture(testProduct())
	ctx := context.Background()

	_, err := service.AddItem(ctx, 1, "PROD-007", 2, "M", "Blue")
	require.NoError(t, err)

	require.NoError(t, service.ClearCart(ctx, 1))
	assert.Empty(t, cartStore.carts[1].Items)
}

func TestClearCart_NoCartIsNoop(t *testing.T) {
	service, cartStore := newCartFixture(testProduct())

	require.NoError(t, service.ClearCart(context.Background(), 9))
	assert.Nil(t, cartStore.carts[9])
}
