package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaximumQuantityAllowed caps a single cart line. Enforced here, not as a
// DB constraint.
const MaximumQuantityAllowed = 15

// -------- Core Logic --------

// FindCartItemsByUser returns all cart lines for a user with their products
// preloaded, so each line can report its subtotal.
func FindCartItemsByUser(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddProductToCart adds quantity of a product to the user's cart, merging
// into an existing line if one exists. The lookup and write run in one
// transaction with a row lock so concurrent adds cannot lose an update.
func AddProductToCart(db *gorm.DB, userID, productID uint, quantity int) (string, error) {
	if quantity > MaximumQuantityAllowed {
		return "", &models.CartLimitError{Message: fmt.Sprintf(
			"Could not add %d items to your shopping cart. Maximum allowed quantity is %d.",
			quantity, MaximumQuantityAllowed)}
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrProductNotFound(productID)
		}
		return "", err
	}

	updatedQuantity := quantity
	err := db.Transaction(func(tx *gorm.DB) error {
		lookup := tx.Where("user_id = ? AND product_id = ?", userID, productID)
		if tx.Dialector.Name() != "sqlite" {
			// sqlite has no SELECT ... FOR UPDATE
			lookup = lookup.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var item models.CartItem
		err := lookup.First(&item).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			newItem := models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			return tx.Create(&newItem).Error
		}

		updatedQuantity = item.Quantity + quantity
		if updatedQuantity > MaximumQuantityAllowed {
			return &models.CartLimitError{Message: fmt.Sprintf(
				"Could not add more %d item(s) because there's already %d item(s) in your shopping cart. Maximum allowed quantity is %d.",
				quantity, item.Quantity, MaximumQuantityAllowed)}
		}
		item.Quantity = updatedQuantity
		item.AddedAt = time.Now()
		return tx.Save(&item).Error
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Product %s x%d has been added to the cart.", product.Name, updatedQuantity), nil
}

// UpdateProductQuantity overwrites the quantity of an existing cart line.
// A missing line is a soft failure, not an error.
func UpdateProductQuantity(db *gorm.DB, userID, productID uint, quantity int) (string, error) {
	var item models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "The product is not in the cart.", nil
		}
		return "", err
	}
	if quantity > MaximumQuantityAllowed {
		return "", &models.CartLimitError{Message: fmt.Sprintf(
			"Could not update quantity to %d. Maximum allowed quantity is %d.",
			quantity, MaximumQuantityAllowed)}
	}
	if err := db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("Quantity has been updated! New quantity: %d", quantity), nil
}

// RemoveProductFromCart deletes a single cart line.
func RemoveProductFromCart(db *gorm.DB, userID, productID uint) (string, error) {
	var item models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "The product is not in the cart.", nil
		}
		return "", err
	}
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		return "", err
	}
	return "The product has been removed from your shopping cart.", nil
}

// ClearCart deletes every line of the user's cart. An already empty cart
// issues no delete.
func ClearCart(db *gorm.DB, userID uint) (string, error) {
	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "Cart is already empty", nil
	}
	if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return "", err
	}
	return "Cart has been deleted!", nil
}

// -------- Handlers --------

type cartLineResponse struct {
	models.CartItem
	Subtotal float64 `json:"subtotal"`
}

// currentUser resolves the authenticated principal's email (set by the JWT
// middleware) to a User row.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	emailVal, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	var user models.User
	if err := db.Where("email = ?", emailVal.(string)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
		return nil, false
	}
	return &user, true
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

func writeCartError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	var limit *models.CartLimitError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.As(err, &limit):
		c.JSON(http.StatusBadRequest, gin.H{"error": limit.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GET /cart
func ViewCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		items, err := FindCartItemsByUser(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		lines := make([]cartLineResponse, 0, len(items))
		for _, item := range items {
			lines = append(lines, cartLineResponse{CartItem: item, Subtotal: item.Subtotal()})
		}
		c.JSON(http.StatusOK, lines)
	}
}

// POST /cart/add/:productId/:quantity
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		quantity, err := strconv.Atoi(c.Param("quantity"))
		if err != nil || quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}
		msg, err := AddProductToCart(db, user.ID, productID, quantity)
		if err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

// PUT /cart/update/:productId/:quantity
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		quantity, err := strconv.Atoi(c.Param("quantity"))
		if err != nil || quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}
		msg, err := UpdateProductQuantity(db, user.ID, productID, quantity)
		if err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

// DELETE /cart/remove/:productId
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		msg, err := RemoveProductFromCart(db, user.ID, productID)
		if err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

// DELETE /cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}
		msg, err := ClearCart(db, user.ID)
		if err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}
