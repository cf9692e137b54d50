package models

type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// UpdateUserRequest uses pointer fields so an absent field and a field set to
// the empty string stay distinguishable.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Avatar    *string `json:"avatar"`
}

type AddCartItemRequest struct {
	ProductSku    string `json:"productSku" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedSize  string `json:"selectedSize" binding:"required"`
	SelectedColor string `json:"selectedColor" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type ProductQuery struct {
	Page      int      `form:"page"`
	Limit     int      `form:"limit"`
	Category  string   `form:"category"`
	MinPrice  *float64 `form:"minPrice"`
	MaxPrice  *float64 `form:"maxPrice"`
	InStock   *bool    `form:"inStock"`
	SortBy    string   `form:"sortBy"`
	SortOrder string   `form:"sortOrder"`
}
