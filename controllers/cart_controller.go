package controllers

import (
	"github.com/gin-gonic/gin"

	"style-shop/models"
	"style-shop/services"
	"style-shop/utils"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController() *CartController {
	return &CartController{
		cartService: services.NewCartService(),
	}
}

// GetCart godoc
// @Summary Get current cart
// @Description Returns the user's cart, creating an empty one if absent
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.GetCart(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart fetched successfully", cart)
}

// AddItem godoc
// @Summary Add item to cart
// @Description Adds a product variant, merging with an existing matching line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), c.GetInt("user_id"),
		req.ProductSku, req.Quantity, req.SelectedSize, req.SelectedColor)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Item added to cart", cart)
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path string true "Cart item ID (cart_item_7 or 7)"
// @Param request body models.UpdateCartItemRequest true "Update Request"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /cart/items/{itemId} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	itemID, ok := utils.ParseCartItemID(c.Param("itemId"))
	if !ok {
		respondError(c, models.InvalidItemIDError())
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	cart, err := ctrl.cartService.UpdateItemQuantity(c.Request.Context(), c.GetInt("user_id"), itemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart item updated", cart)
}

// RemoveItem godoc
// @Summary Remove cart item
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param itemId path string true "Cart item ID (cart_item_7 or 7)"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{itemId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	itemID, ok := utils.ParseCartItemID(c.Param("itemId"))
	if !ok {
		respondError(c, models.InvalidItemIDError())
		return
	}

	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), c.GetInt("user_id"), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Item removed from cart", cart)
}

// ClearCart godoc
// @Summary Clear cart
// @Description Removes every line item; no-op when the user has no cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cartService.ClearCart(c.Request.Context(), c.GetInt("user_id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Cart cleared successfully", nil)
}
