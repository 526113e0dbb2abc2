package routes

import (
	userControllers "github.com/angelstanciu/e-commerce-shop/controllers/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.GET("", userControllers.GetAllUsers(db))
		users.GET("/:id", userControllers.GetUserByID(db))
		users.GET("/page/:pageNum", userControllers.GetUsersByPage(db))
		users.GET("/sorted", userControllers.GetAllUsersSorted(db))
		users.POST("", userControllers.CreateUser(db))
		users.PUT("/:id", userControllers.UpdateUserHandler(db))
		users.PATCH("/:id/update-status", userControllers.UpdateUserStatusHandler(db))
		users.DELETE("/:id", userControllers.DeleteUser(db))
	}
}
