package services

import (
	"context"
	"strings"

	"style-shop/models"
	"style-shop/repositories"
)

// In-memory stand-ins for the pgx repositories. They keep just enough
// behavior for the services to run end-to-end against plain slices.

type fakeProductStore struct {
	products   []*models.Product
	categories []models.Category
	lastFilter repositories.ProductFilter
}

func newFakeProductStore(products ...*models.Product) *fakeProductStore {
	return &fakeProductStore{products: products}
}

func (f *fakeProductStore) byID(id int) *models.Product {
	for _, p := range f.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (f *fakeProductStore) FindAll(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int, error) {
	f.lastFilter = filter

	matched := []models.Product{}
	for _, p := range f.products {
		if filter.Category != "" && !strings.EqualFold(p.CategoryName, filter.Category) {
			continue
		}
		matched = append(matched, *p)
	}

	total := len(matched)
	if filter.Offset >= total {
		return []models.Product{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (f *fakeProductStore) FindByID(ctx context.Context, id int) (*models.Product, error) {
	return f.byID(id), nil
}

func (f *fakeProductStore) FindRelated(ctx context.Context, categoryID, excludeID, limit int) ([]models.Product, error) {
	related := []models.Product{}
	for _, p := range f.products {
		if p.CategoryID != categoryID || p.ID == excludeID {
			continue
		}
		related = append(related, *p)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

func (f *fakeProductStore) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	for i := range f.categories {
		if strings.EqualFold(f.categories[i].Name, name) {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductStore) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

type fakeCartStore struct {
	products   *fakeProductStore
	carts      map[int]*models.Cart
	nextCartID int
	nextItemID int
}

func newFakeCartStore(products *fakeProductStore) *fakeCartStore {
	return &fakeCartStore{
		products:   products,
		carts:      make(map[int]*models.Cart),
		nextCartID: 1,
		nextItemID: 1,
	}
}

func (f *fakeCartStore) FindByUserID(ctx context.Context, userID int) (*models.Cart, error) {
	return f.carts[userID], nil
}

func (f *fakeCartStore) Create(ctx context.Context, userID int) (*models.Cart, error) {
	cart := &models.Cart{ID: f.nextCartID, UserID: userID, Items: []models.CartItem{}}
	f.nextCartID++
	f.carts[userID] = cart
	return cart, nil
}

func (f *fakeCartStore) FindItemByID(ctx context.Context, itemID int) (*models.CartItem, int, error) {
	for _, cart := range f.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				return &cart.Items[i], cart.UserID, nil
			}
		}
	}
	return nil, 0, nil
}

func (f *fakeCartStore) FindItemByVariant(ctx context.Context, cartID, productID int, size, color string) (*models.CartItem, error) {
	cart := f.cartByID(cartID)
	if cart == nil {
		return nil, nil
	}
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ProductID == productID && item.SelectedSize == size && item.SelectedColor == color {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeCartStore) AddItem(ctx context.Context, cartID, productID, quantity int, size, color string) error {
	cart := f.cartByID(cartID)
	cart.Items = append(cart.Items, models.CartItem{
		ID:            f.nextItemID,
		CartID:        cartID,
		ProductID:     productID,
		Product:       f.products.byID(productID),
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
	})
	f.nextItemID++
	return nil
}

func (f *fakeCartStore) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	for _, cart := range f.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return nil
}

func (f *fakeCartStore) DeleteItem(ctx context.Context, itemID int) error {
	for _, cart := range f.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeCartStore) ClearCart(ctx context.Context, cartID int) error {
	if cart := f.cartByID(cartID); cart != nil {
		cart.Items = []models.CartItem{}
	}
	return nil
}

func (f *fakeCartStore) cartByID(cartID int) *models.Cart {
	for _, cart := range f.carts {
		if cart.ID == cartID {
			return cart
		}
	}
	return nil
}
