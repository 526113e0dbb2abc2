package routes

import (
	"github.com/angelstanciu/e-commerce-shop/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupAuthRoutes(r, db, cfg.JWTSecret)
	SetupCartRoutes(r, db, cfg.JWTSecret)
	SetupCatalogRoutes(r, db, cfg.AdminAPIKey)
	SetupOrderRoutes(r, db)
	SetupUserRoutes(r, db)
}
