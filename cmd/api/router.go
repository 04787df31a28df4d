package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/docs"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))
		api.GET("/openapi.json", openAPIHandler(c))

		setupCategoryRoutes(api, c)
		setupProductRoutes(api, c)
	}

	return router
}

func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	categories := api.Group("/categories")
	{
		categories.POST("", c.CategoryHandler.Create)
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

func setupProductRoutes(api *gin.RouterGroup, c *container.Container) {
	products := api.Group("/products")
	{
		products.POST("", c.ProductHandler.Create)
		products.GET("", c.ProductHandler.GetAll)
		products.GET("/paginated", c.ProductHandler.GetPaginated)
		products.GET("/by-name", c.ProductHandler.GetByName)
		products.GET("/price-gt/:price", c.ProductHandler.GetByPriceGreaterThan)
		products.GET("/by-category-name", c.ProductHandler.GetByCategoryName)
		products.GET("/by-category-id/:categoryId", c.ProductHandler.GetByCategoryID)
		products.GET("/filter-by-price-and-category", c.ProductHandler.FilterByPriceAndCategory)
		products.GET("/details-by-category-name", c.ProductHandler.GetDetailsByCategoryName)
		products.GET("/search", c.ProductHandler.Search)
		products.GET("/price-range-and-category", c.ProductHandler.GetByPriceRangeAndCategory)
		products.GET("/by-category-name-native", c.ProductHandler.GetSummariesByCategoryName)
		products.GET("/:id", c.ProductHandler.GetByID)
		products.PUT("/:id", c.ProductHandler.Update)
		products.DELETE("/:id", c.ProductHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "up"})
	}
}

func openAPIHandler(c *container.Container) gin.HandlerFunc {
	doc := docs.Document(
		c.Config.App.Version,
		"http://localhost:"+c.Config.App.Port,
	)
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, doc)
	}
}
