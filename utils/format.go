package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"style-shop/models"
)

const currency = "USD"

var whitespacePattern = regexp.MustCompile(`\s+`)

// Round2 rounds to two decimal places. Totals are summed first and rounded
// once, so per-item rounding error never compounds.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Round1 rounds to one decimal place, used for ratings.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Slugify lowercases a name and collapses whitespace runs into dashes.
func Slugify(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(name), "-")
}

func FormatProduct(p *models.Product) models.ProductView {
	images := []string{}
	if p.Image != nil && *p.Image != "" {
		images = append(images, *p.Image)
	}

	var rating *float64
	if p.Rating != nil {
		r := Round1(*p.Rating)
		rating = &r
	}

	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	colors := p.Colors
	if colors == nil {
		colors = []string{}
	}

	return models.ProductView{
		Sku:            EncodeSKU(p.ID),
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Currency:       currency,
		Image:          p.Image,
		Images:         images,
		Category:       Slugify(p.CategoryName),
		InStock:        p.Stock > 0,
		StockQuantity:  p.Stock,
		Sizes:          sizes,
		Colors:         colors,
		Specifications: map[string]string{},
		Rating:         rating,
		ReviewCount:    len(p.Reviews),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FormatProductWithReviews(p *models.Product) models.ProductView {
	view := FormatProduct(p)

	reviews := make([]models.ReviewView, 0, len(p.Reviews))
	for _, review := range p.Reviews {
		reviews = append(reviews, models.ReviewView{
			ID:        fmt.Sprintf("review_%d", review.ID),
			UserID:    fmt.Sprintf("user_%d", review.UserID),
			UserName:  review.UserName,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	view.Reviews = reviews

	return view
}

func FormatProductSummary(p *models.Product) models.ProductSummaryView {
	return models.ProductSummaryView{
		Sku:      EncodeSKU(p.ID),
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: Slugify(p.CategoryName),
		InStock:  p.Stock > 0,
	}
}

func FormatCartItem(item *models.CartItem) models.CartItemView {
	product := item.Product

	return models.CartItemView{
		ID: EncodeCartItemID(item.ID),
		Product: models.CartItemProductView{
			Sku:      EncodeSKU(product.ID),
			Name:     product.Name,
			Price:    product.Price,
			Currency: currency,
			Image:    product.Image,
		},
		Quantity:      item.Quantity,
		SelectedSize:  item.SelectedSize,
		SelectedColor: item.SelectedColor,
		Subtotal:      product.Price * float64(item.Quantity),
	}
}

// FormatCart recomputes all totals from current product prices. Shipping and
// tax are flat zero for now.
func FormatCart(cart *models.Cart) models.CartView {
	items := make([]models.CartItemView, 0, len(cart.Items))
	subtotal := 0.0
	for i := range cart.Items {
		item := FormatCartItem(&cart.Items[i])
		subtotal += item.Subtotal
		items = append(items, item)
	}

	shipping := 0.0
	tax := 0.0
	total := subtotal + shipping + tax

	return models.CartView{
		ID:        fmt.Sprintf("cart_%d", cart.ID),
		UserID:    fmt.Sprintf("user_%d", cart.UserID),
		Items:     items,
		Subtotal:  Round2(subtotal),
		Shipping:  Round2(shipping),
		Tax:       Round2(tax),
		Total:     Round2(total),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}
