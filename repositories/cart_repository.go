package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"style-shop/config"
	"style-shop/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID int) (*models.Cart, error) {
	cart := &models.Cart{}
	err := config.DB.QueryRow(ctx,
		`SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`,
		userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.findItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return cart, nil
}

func (r *CartRepository) Create(ctx context.Context, userID int) (*models.Cart, error) {
	cart := &models.Cart{UserID: userID, Items: []models.CartItem{}}
	now := time.Now()
	err := config.DB.QueryRow(ctx,
		`INSERT INTO carts (user_id, created_at, updated_at) VALUES ($1, $2, $2)
		 RETURNING id, created_at, updated_at`,
		userID, now).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) findItems(ctx context.Context, cartID int) ([]models.CartItem, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity,
		       ci.selected_size, ci.selected_color, ci.created_at, ci.updated_at,
		       p.id, p.name, p.description, p.price, p.stock, p.is_active,
		       p.sizes, p.colors, p.image, p.rating, p.category_id, c.name, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		JOIN categories c ON p.category_id = c.id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at DESC
	`

	rows, err := config.DB.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		product := &models.Product{}
		err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity,
			&item.SelectedSize, &item.SelectedColor, &item.CreatedAt, &item.UpdatedAt,
			&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock,
			&product.IsActive, &product.Sizes, &product.Colors, &product.Image, &product.Rating,
			&product.CategoryID, &product.CategoryName, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Product = product
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindItemByID loads one cart line with its product, alongside the id of the
// user owning the cart it belongs to.
func (r *CartRepository) FindItemByID(ctx context.Context, itemID int) (*models.CartItem, int, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity,
		       ci.selected_size, ci.selected_color, ci.created_at, ci.updated_at,
		       ct.user_id,
		       p.id, p.name, p.description, p.price, p.stock, p.is_active,
		       p.sizes, p.colors, p.image, p.rating, p.category_id, c.name, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN carts ct ON ci.cart_id = ct.id
		JOIN products p ON ci.product_id = p.id
		JOIN categories c ON p.category_id = c.id
		WHERE ci.id = $1
	`

	var item models.CartItem
	var ownerID int
	product := &models.Product{}
	err := config.DB.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity,
		&item.SelectedSize, &item.SelectedColor, &item.CreatedAt, &item.UpdatedAt,
		&ownerID,
		&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock,
		&product.IsActive, &product.Sizes, &product.Colors, &product.Image, &product.Rating,
		&product.CategoryID, &product.CategoryName, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	item.Product = product

	return &item, ownerID, nil
}

func (r *CartRepository) FindItemByVariant(ctx context.Context, cartID, productID int, size, color string) (*models.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity, selected_size, selected_color, created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1 AND product_id = $2 AND selected_size = $3 AND selected_color = $4
	`

	item := &models.CartItem{}
	err := config.DB.QueryRow(ctx, query, cartID, productID, size, color).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity,
		&item.SelectedSize, &item.SelectedColor, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// AddItem inserts a cart line. The product row is locked and its stock
// re-checked inside the transaction, so two concurrent adds cannot book more
// than the available stock between check and write.
func (r *CartRepository) AddItem(ctx context.Context, cartID, productID, quantity int, size, color string) error {
	return r.withStockGuard(ctx, productID, quantity, func(tx pgx.Tx) error {
		now := time.Now()
		_, err := tx.Exec(ctx,
			`INSERT INTO cart_items (cart_id, product_id, quantity, selected_size, selected_color, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
			cartID, productID, quantity, size, color, now)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE carts SET updated_at = $1 WHERE id = $2`, now, cartID)
		return err
	})
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	var productID int
	err := config.DB.QueryRow(ctx,
		`SELECT product_id FROM cart_items WHERE id = $1`, itemID).Scan(&productID)
	if err != nil {
		return err
	}

	return r.withStockGuard(ctx, productID, quantity, func(tx pgx.Tx) error {
		now := time.Now()
		_, err := tx.Exec(ctx,
			`UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3`,
			quantity, now, itemID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE carts SET updated_at = $1 WHERE id = (SELECT cart_id FROM cart_items WHERE id = $2)`,
			now, itemID)
		return err
	})
}

func (r *CartRepository) DeleteItem(ctx context.Context, itemID int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	return err
}

func (r *CartRepository) ClearCart(ctx context.Context, cartID int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}

func (r *CartRepository) withStockGuard(ctx context.Context, productID, quantity int, write func(pgx.Tx) error) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var stock int
	err = tx.QueryRow(ctx,
		`SELECT stock FROM products WHERE id = $1 FOR UPDATE`, productID).Scan(&stock)
	if err != nil {
		return err
	}

	if stock < quantity {
		if stock == 0 {
			return models.OutOfStockError("Product is out of stock")
		}
		return models.OutOfStockError(
			fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", stock, quantity))
	}

	if err := write(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
