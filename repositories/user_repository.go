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

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, username, email, password, first_name, last_name, phone, COALESCE(avatar, ''), created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, first_name, last_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.Phone, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.Phone, &user.Avatar,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Update writes only the fields present in the request; nil pointers leave
// the stored value untouched.
func (r *UserRepository) Update(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	set := ""
	args := []interface{}{}
	paramIndex := 1

	appendSet := func(column string, value interface{}) {
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", column, paramIndex)
		args = append(args, value)
		paramIndex++
	}

	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.Phone != nil {
		appendSet("phone", *req.Phone)
	}
	if req.Avatar != nil {
		appendSet("avatar", *req.Avatar)
	}

	if len(args) > 0 {
		appendSet("updated_at", time.Now())
		query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", set, paramIndex)
		args = append(args, id)
		if _, err := config.DB.Exec(ctx, query, args...); err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, id)
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE users SET avatar = $1, updated_at = $2 WHERE id = $3`,
		avatarURL, time.Now(), id)
	return err
}
