package models

import "time"

type Category struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        *string   `json:"image"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	IsActive     bool      `json:"is_active"`
	Sizes        []string  `json:"sizes"`
	Colors       []string  `json:"colors"`
	Image        *string   `json:"image"`
	Rating       *float64  `json:"rating"`
	CategoryID   int       `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Reviews      []Review  `json:"reviews,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
