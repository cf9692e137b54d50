package services

import (
	"context"

	"style-shop/models"
	"style-shop/repositories"
)

// Store interfaces cover what the services need from the persistence layer.
// The pgx-backed repositories satisfy them; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error)
	UpdateAvatar(ctx context.Context, id int, avatarURL string) error
}

type ProductStore interface {
	FindAll(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int, error)
	FindByID(ctx context.Context, id int) (*models.Product, error)
	FindRelated(ctx context.Context, categoryID, excludeID, limit int) ([]models.Product, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

type CartStore interface {
	FindByUserID(ctx context.Context, userID int) (*models.Cart, error)
	Create(ctx context.Context, userID int) (*models.Cart, error)
	FindItemByID(ctx context.Context, itemID int) (*models.CartItem, int, error)
	FindItemByVariant(ctx context.Context, cartID, productID int, size, color string) (*models.CartItem, error)
	AddItem(ctx context.Context, cartID, productID, quantity int, size, color string) error
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) error
	DeleteItem(ctx context.Context, itemID int) error
	ClearCart(ctx context.Context, cartID int) error
}
