package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToUpper(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// generateOrderRef builds a unique order reference.
// Example: 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

func FindAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.
		Preload("User").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func FindOrderByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.
		Preload("User").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound(id)
		}
		return nil, err
	}
	return &order, nil
}

func FindOrdersByUserID(db *gorm.DB, userID uint) ([]models.Order, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound(userID)
		}
		return nil, err
	}
	var orders []models.Order
	err := db.
		Where("user_id = ?", userID).
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// SaveOrder persists an order and its details in two passes: the order row
// first, so the generated id exists, then the details pointing back at it.
// Both passes run inside the caller's transaction when db is one.
func SaveOrder(db *gorm.DB, order *models.Order) error {
	details := order.OrderDetails
	order.OrderDetails = nil

	if order.Date.IsZero() {
		order.Date = time.Now().Truncate(24 * time.Hour)
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.OrderRef == "" {
		order.OrderRef = generateOrderRef()
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(order).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].OrderID = order.ID
		}
		if len(details) > 0 {
			if err := tx.Save(&details).Error; err != nil {
				return err
			}
		}
		order.OrderDetails = details
		return nil
	})
}

// CreateOrder converts cart lines into a persisted order, snapshotting each
// product's current unit price and subtotal. The total is computed once here
// and never recomputed.
func CreateOrder(db *gorm.DB, user *models.User, cartItems []models.CartItem) (*models.Order, error) {
	var total float64
	details := make([]models.OrderDetail, 0, len(cartItems))
	for _, item := range cartItems {
		var unitPrice float64
		if item.Product != nil {
			unitPrice = item.Product.Price
		}
		subtotal := item.Subtotal()
		total += subtotal
		details = append(details, models.OrderDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
	}

	order := models.Order{
		UserID:       user.ID,
		Total:        total,
		OrderDetails: details,
	}
	if err := SaveOrder(db, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func UpdateOrderStatus(db *gorm.DB, id uint, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := FindOrderByID(db, id)
	if err != nil {
		return nil, err
	}
	order.Status = newStatus
	if err := db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	broadcastOrder(*order)
	return order, nil
}

// DeleteOrderByID removes an order together with its details.
func DeleteOrderByID(db *gorm.DB, id uint) error {
	if _, err := FindOrderByID(db, id); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

// -------- Handlers --------

func writeOrderError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

// GET /orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := FindAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		order, err := FindOrderByID(db, id)
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/user/:userId
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		orders, err := FindOrdersByUserID(db, uint(userID))
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// POST /orders
func SaveOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := SaveOrder(db, &order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// PUT /orders/:id/updateStatus
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := UpdateOrderStatus(db, id, newStatus)
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:id
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		if err := DeleteOrderByID(db, id); err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
