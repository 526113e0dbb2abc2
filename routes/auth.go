package routes

import (
	"github.com/angelstanciu/e-commerce-shop/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public auth endpoints (no middleware).
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db, jwtSecret))
	}
}
