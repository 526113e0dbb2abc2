package routes

import (
	orderControllers "github.com/angelstanciu/e-commerce-shop/controllers/order"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.GET("", orderControllers.GetAllOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orders.GET("/user/:userId", orderControllers.GetUserOrdersHandler(db))
		orders.POST("", orderControllers.SaveOrderHandler(db))
		orders.PUT("/:id/updateStatus", orderControllers.UpdateOrderStatusHandler(db))
		orders.DELETE("/:id", orderControllers.DeleteOrderHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}

	details := r.Group("/order-details")
	{
		details.GET("", orderControllers.GetAllOrderDetailsHandler(db))
		details.GET("/:id", orderControllers.GetOrderDetailsByOrderHandler(db))
	}
}
