package routes

import (
	productController "github.com/angelstanciu/e-commerce-shop/controllers/product"
	"github.com/angelstanciu/e-commerce-shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers products, categories and technical details.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, adminAPIKey string) {
	products := r.Group("/products")
	{
		products.GET("", productController.GetProducts(db))
		products.GET("/:id", productController.GetProductByID(db))
		products.GET("/page/:pageNum", productController.GetProductsByPage(db))
		products.POST("", productController.CreateProduct(db))
		products.PUT("/:id", productController.UpdateProductHandler(db))
		products.DELETE("/:id", productController.DeleteProduct(db))
		products.GET("/export-excel", middleware.ValidateAPIKey(adminAPIKey), productController.ExportProductsToExcel(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", productController.GetAllCategories(db))
		categories.GET("/:id", productController.GetCategoryByID(db))
		categories.GET("/parents/:id", productController.GetCategoriesByParent(db))
		categories.POST("", productController.CreateCategory(db))
		categories.PUT("/:id", productController.UpdateCategoryHandler(db))
		categories.DELETE("/:id", productController.DeleteCategory(db))
	}

	details := r.Group("/technical-details")
	{
		details.GET("", productController.GetTechnicalDetails(db))
		details.GET("/:id", productController.GetTechnicalDetailByID(db))
		details.GET("/product/:id", productController.GetTechnicalDetailsByProduct(db))
		details.POST("", productController.CreateTechnicalDetailHandler(db))
		details.PUT("/:id", productController.UpdateTechnicalDetailHandler(db))
		details.DELETE("/:id", productController.DeleteTechnicalDetail(db))
	}
}
