package orderControllers

import (
	"net/http"

	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Core Logic --------

func FindAllOrderDetails(db *gorm.DB) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	err := db.Preload("Product").Find(&details).Error
	return details, err
}

// FindOrderDetailsByOrderID lists the lines of one order. An unknown order id
// yields an empty list, not an error.
func FindOrderDetailsByOrderID(db *gorm.DB, orderID uint) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	err := db.Preload("Product").Where("order_id = ?", orderID).Find(&details).Error
	return details, err
}

// -------- Handlers --------

// GET /order-details
func GetAllOrderDetailsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		details, err := FindAllOrderDetails(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order details"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// GET /order-details/:id
func GetOrderDetailsByOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		details, err := FindOrderDetailsByOrderID(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order details"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}
