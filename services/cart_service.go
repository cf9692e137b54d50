package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"style-shop/models"
	"style-shop/repositories"
	"style-shop/utils"
)

type CartService struct {
	cartStore    CartStore
	productStore ProductStore
}

func NewCartService() *CartService {
	return &CartService{
		cartStore:    repositories.NewCartRepository(),
		productStore: repositories.NewProductRepository(),
	}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *CartService) GetCart(ctx context.Context, userID int) (*models.CartView, error) {
	cart, err := s.fetchOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := utils.FormatCart(cart)
	return &view, nil
}

func (s *CartService) AddItem(ctx context.Context, userID int, productSku string, quantity int, selectedSize, selectedColor string) (*models.CartView, error) {
	productID, ok := utils.ParseSKU(productSku)
	if !ok {
		return nil, models.InvalidSKUError()
	}

	cart, err := s.fetchOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.productStore.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, models.ProductNotFoundError()
	}
	if !product.IsActive {
		return nil, models.ProductInactiveError()
	}

	if err := checkStock(product.Stock, quantity); err != nil {
		return nil, err
	}

	if strings.TrimSpace(selectedSize) == "" {
		return nil, models.MissingVariantError("selectedSize is required")
	}
	if strings.TrimSpace(selectedColor) == "" {
		return nil, models.MissingVariantError("selectedColor is required")
	}

	if len(product.Sizes) > 0 && !slices.Contains(product.Sizes, selectedSize) {
		return nil, models.InvalidVariantError(
			fmt.Sprintf("Invalid size selected. Available sizes: %s", strings.Join(product.Sizes, ", ")))
	}
	if len(product.Colors) > 0 && !slices.Contains(product.Colors, selectedColor) {
		return nil, models.InvalidVariantError(
			fmt.Sprintf("Invalid color selected. Available colors: %s", strings.Join(product.Colors, ", ")))
	}

	existing, err := s.cartStore.FindItemByVariant(ctx, cart.ID, productID, selectedSize, selectedColor)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// Merge into the existing line; the stock check runs against the
		// merged quantity, not the delta.
		merged := existing.Quantity + quantity
		if err := checkStock(product.Stock, merged); err != nil {
			return nil, err
		}
		if err := s.cartStore.UpdateItemQuantity(ctx, existing.ID, merged); err != nil {
			return nil, err
		}
	} else {
		if err := s.cartStore.AddItem(ctx, cart.ID, productID, quantity, selectedSize, selectedColor); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, userID)
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID, quantity int) (*models.CartView, error) {
	if quantity <= 0 {
		return nil, models.InvalidQuantityError()
	}

	item, ownerID, err := s.cartStore.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, models.ItemNotFoundError()
	}
	if ownerID != userID {
		return nil, models.ForbiddenError()
	}

	if err := checkStock(item.Product.Stock, quantity); err != nil {
		return nil, err
	}

	if err := s.cartStore.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int) (*models.CartView, error) {
	item, ownerID, err := s.cartStore.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, models.ItemNotFoundError()
	}
	if ownerID != userID {
		return nil, models.ForbiddenError()
	}

	if err := s.cartStore.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

// ClearCart deletes every line in the user's cart. A user without a cart is
// a no-op, not an error.
func (s *CartService) ClearCart(ctx context.Context, userID int) error {
	cart, err := s.cartStore.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.cartStore.ClearCart(ctx, cart.ID)
}

func (s *CartService) fetchOrCreate(ctx context.Context, userID int) (*models.Cart, error) {
	cart, err := s.cartStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart, err = s.cartStore.Create(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	return cart, nil
}

func (s *CartService) reload(ctx context.Context, userID int) (*models.CartView, error) {
	cart, err := s.cartStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := utils.FormatCart(cart)
	return &view, nil
}

func checkStock(stock, requested int) error {
	if stock >= requested {
		return nil
	}
	if stock == 0 {
		return models.OutOfStockError("Product is out of stock")
	}
	return models.OutOfStockError(
		fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", stock, requested))
}
