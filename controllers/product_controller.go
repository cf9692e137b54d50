package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"style-shop/config"
	"style-shop/models"
	"style-shop/services"
)

const productCacheTTL = 5 * time.Minute

type ProductController struct {
	productService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
	}
}

func productCacheKey(rawQuery string) string {
	return "products_list_?" + rawQuery
}

// ListProducts godoc
// @Summary List products
// @Description Paginated product listing with filters
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param category query string false "Category name (case-insensitive)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param inStock query bool false "Only in-stock products"
// @Param sortBy query string false "Sort field" Enums(price, name, createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	cacheKey := productCacheKey(c.Request.URL.RawQuery)

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	var query models.ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := ctrl.productService.ListProducts(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	response := models.Response{Success: true, Message: "Products retrieved", Data: result}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			config.RedisClient.Set(context.Background(), cacheKey, string(jsonData), productCacheTTL)
		}
	}

	c.JSON(200, response)
}

// GetProductBySku godoc
// @Summary Get product by SKU
// @Description Product details with reviews and up to 4 related products
// @Tags Products
// @Produce json
// @Param sku path string true "Product SKU (PROD-001)"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{sku} [get]
func (ctrl *ProductController) GetProductBySku(c *gin.Context) {
	result, err := ctrl.productService.GetProductBySku(c.Request.Context(), c.Param("sku"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Product retrieved", result)
}
