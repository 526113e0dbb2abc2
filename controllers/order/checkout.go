package orderControllers

import (
	"net/http"

	cartControllers "github.com/angelstanciu/e-commerce-shop/controllers/cart"
	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlaceOrder converts the user's cart into an order. Order insert, detail
// insert and cart clear all commit or roll back together; an uncleared cart
// can never outlive a saved order.
func PlaceOrder(db *gorm.DB, user *models.User) (string, error) {
	cartItems, err := cartControllers.FindCartItemsByUser(db, user.ID)
	if err != nil {
		return "", err
	}
	if len(cartItems) == 0 {
		return "Cart is empty.", nil
	}

	var placed *models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		order, err := CreateOrder(tx, user, cartItems)
		if err != nil {
			return err
		}
		placed = order
		return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return "", err
	}

	broadcastOrder(*placed)
	return "Order has been placed. Thank you for purchase.", nil
}

// POST /checkout
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user models.User
		if err := db.Where("email = ?", emailVal.(string)).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}
		msg, err := PlaceOrder(db, &user)
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}
