package routes

import (
	cartControllers "github.com/angelstanciu/e-commerce-shop/controllers/cart"
	orderControllers "github.com/angelstanciu/e-commerce-shop/controllers/order"
	"github.com/angelstanciu/e-commerce-shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart and checkout endpoints. Both identify
// the caller through the JWT email claim.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(jwtSecret))
	{
		cartGroup.GET("", cartControllers.ViewCart(db))
		cartGroup.POST("/add/:productId/:quantity", cartControllers.AddToCart(db))
		cartGroup.PUT("/update/:productId/:quantity", cartControllers.UpdateQuantity(db))
		cartGroup.DELETE("/remove/:productId", cartControllers.RemoveFromCart(db))
		cartGroup.DELETE("", cartControllers.ClearUserCart(db))
	}

	checkout := r.Group("/checkout")
	checkout.Use(middleware.ValidateToken(jwtSecret))
	{
		checkout.POST("", orderControllers.PlaceOrderHandler(db))
	}
}
