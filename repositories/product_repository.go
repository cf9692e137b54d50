package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"style-shop/config"
	"style-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// ProductFilter carries the already-validated listing parameters. SortBy and
// SortOrder are mapped onto a whitelist here, never interpolated raw.
type ProductFilter struct {
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	InStock   *bool
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

const productColumns = `p.id, p.name, p.description, p.price, p.stock, p.is_active,
	       p.sizes, p.colors, p.image, p.rating, p.category_id, c.name, p.created_at, p.updated_at`

var sortColumns = map[string]string{
	"price":     "p.price",
	"name":      "p.name",
	"createdAt": "p.created_at",
}

func (f ProductFilter) orderByClause() string {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "p.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}

func (f ProductFilter) whereClause() (string, []interface{}) {
	where := " WHERE p.is_active = true"
	args := []interface{}{}
	paramIndex := 1

	if f.Category != "" {
		where += fmt.Sprintf(" AND LOWER(c.name) = LOWER($%d)", paramIndex)
		args = append(args, f.Category)
		paramIndex++
	}
	if f.MinPrice != nil {
		where += fmt.Sprintf(" AND p.price >= $%d", paramIndex)
		args = append(args, *f.MinPrice)
		paramIndex++
	}
	if f.MaxPrice != nil {
		where += fmt.Sprintf(" AND p.price <= $%d", paramIndex)
		args = append(args, *f.MaxPrice)
		paramIndex++
	}
	if f.InStock != nil {
		if *f.InStock {
			where += " AND p.stock > 0"
		} else {
			where += " AND p.stock <= 0"
		}
	}

	return where, args
}

func (r *ProductRepository) FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, int, error) {
	where, args := filter.whereClause()

	var total int
	countQuery := "SELECT COUNT(*) FROM products p JOIN categories c ON p.category_id = c.id" + where
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + productColumns + " FROM products p JOIN categories c ON p.category_id = c.id" +
		where + filter.orderByClause() +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	query := "SELECT " + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id WHERE p.id = $1`

	row := config.DB.QueryRow(ctx, query, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	reviews, err := r.findReviews(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Reviews = reviews

	return p, nil
}

func (r *ProductRepository) FindRelated(ctx context.Context, categoryID, excludeID, limit int) ([]models.Product, error) {
	query := "SELECT " + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id
	          WHERE p.is_active = true AND p.category_id = $1 AND p.id != $2
	          ORDER BY p.created_at DESC LIMIT $3`

	rows, err := config.DB.Query(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) findReviews(ctx context.Context, productID int) ([]models.Review, error) {
	query := `
		SELECT rv.id, rv.product_id, rv.user_id,
		       COALESCE(NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.username),
		       rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN users u ON rv.user_id = u.id
		WHERE rv.product_id = $1
		ORDER BY rv.created_at DESC
	`

	rows, err := config.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ProductRepository) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	query := `SELECT id, name, description, image, created_at FROM categories WHERE LOWER(name) = LOWER($1)`

	cat := &models.Category{}
	err := config.DB.QueryRow(ctx, query, name).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Image, &cat.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cat, nil
}

func (r *ProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.image, c.created_at,
		       COUNT(p.id) FILTER (WHERE p.is_active)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Image, &cat.CreatedAt, &cat.ProductCount); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.IsActive,
		&p.Sizes, &p.Colors, &p.Image, &p.Rating, &p.CategoryID, &p.CategoryName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
