package models

import "time"

// Wire representations. These are what the API serves; the formatters in
// utils build them from the storage records.

type ProductView struct {
	Sku            string            `json:"sku"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Currency       string            `json:"currency"`
	Image          *string           `json:"image"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	InStock        bool              `json:"inStock"`
	StockQuantity  int               `json:"stockQuantity"`
	Sizes          []string          `json:"sizes"`
	Colors         []string          `json:"colors"`
	Specifications map[string]string `json:"specifications"`
	Rating         *float64          `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Reviews        []ReviewView      `json:"reviews,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type ReviewView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductSummaryView struct {
	Sku      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    *string `json:"image"`
	Category string  `json:"category"`
	InStock  bool    `json:"inStock"`
}

type CartItemProductView struct {
	Sku      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Image    *string `json:"image"`
}

type CartItemView struct {
	ID            string              `json:"id"`
	Product       CartItemProductView `json:"product"`
	Quantity      int                 `json:"quantity"`
	SelectedSize  string              `json:"selectedSize"`
	SelectedColor string              `json:"selectedColor"`
	Subtotal      float64             `json:"subtotal"`
}

type CartView struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Items     []CartItemView `json:"items"`
	Subtotal  float64        `json:"subtotal"`
	Shipping  float64        `json:"shipping"`
	Tax       float64        `json:"tax"`
	Total     float64        `json:"total"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type ProductListView struct {
	Products   []ProductView  `json:"products"`
	Pagination PaginationMeta `json:"pagination"`
}

type ProductDetailView struct {
	Product         ProductView          `json:"product"`
	RelatedProducts []ProductSummaryView `json:"relatedProducts"`
}

type CategoryProductsView struct {
	Products   []ProductView  `json:"products"`
	Pagination PaginationMeta `json:"pagination"`
	Category   CategoryView   `json:"category"`
}

type CategoryView struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  string  `json:"description"`
	Image        *string `json:"image"`
	ProductCount int     `json:"productCount"`
}
