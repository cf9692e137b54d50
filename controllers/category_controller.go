package controllers

import (
	"github.com/gin-gonic/gin"

	"style-shop/models"
	"style-shop/services"
)

type CategoryController struct {
	productService *services.ProductService
}

func NewCategoryController() *CategoryController {
	return &CategoryController{
		productService: services.NewProductService(),
	}
}

// GetAllCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.productService.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Categories retrieved", gin.H{"categories": categories})
}

// GetProductsByCategory godoc
// @Summary List products in a category
// @Tags Categories
// @Produce json
// @Param name path string true "Category name (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param sortBy query string false "Sort field" Enums(price, name, createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{name}/products [get]
func (ctrl *CategoryController) GetProductsByCategory(c *gin.Context) {
	var query models.ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := ctrl.productService.GetProductsByCategory(c.Request.Context(), c.Param("name"), query)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Products retrieved", result)
}
