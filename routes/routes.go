package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"style-shop/controllers"
	"style-shop/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController()
	productCtrl := controllers.NewProductController()
	categoryCtrl := controllers.NewCategoryController()
	cartCtrl := controllers.NewCartController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/auth/signup", authCtrl.Signup)
	api.POST("/auth/signin", authCtrl.Signin)

	api.GET("/products", productCtrl.ListProducts)
	api.GET("/products/:sku", productCtrl.GetProductBySku)
	api.GET("/categories", categoryCtrl.GetAllCategories)
	api.GET("/categories/:name/products", categoryCtrl.GetProductsByCategory)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.Profile)

		auth.GET("/users/:id", userCtrl.GetUser)
		auth.PUT("/users/:id", userCtrl.UpdateUser)
		auth.PATCH("/users/:id/avatar", userCtrl.UpdateAvatar)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PUT("/cart/items/:itemId", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:itemId", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)
	}
}
