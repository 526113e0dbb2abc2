package cartControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelstanciu/e-commerce-shop/auth"
	cartControllers "github.com/angelstanciu/e-commerce-shop/controllers/cart"
	"github.com/angelstanciu/e-commerce-shop/middleware"
	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Role{},
		&models.Category{}, &models.Product{}, &models.TechnicalDetail{},
		&models.CartItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret",
		Status:    models.UserStatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	product := models.Product{
		Name:    name,
		Alias:   name + "-alias",
		Price:   price,
		Stock:   100,
		Enabled: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddProductToCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "cart@example.com")
	product := seedProduct(t, db, "Product 1", 15.49)

	t.Run("rejects quantity above the cap and leaves the cart unchanged", func(t *testing.T) {
		_, err := cartControllers.AddProductToCart(db, user.ID, product.ID, 20)

		var limitErr *models.CartLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Contains(t, limitErr.Message, "Could not add 20 items")

		var count int64
		db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("creates a new line for a product not yet in the cart", func(t *testing.T) {
		msg, err := cartControllers.AddProductToCart(db, user.ID, product.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, "Product Product 1 x3 has been added to the cart.", msg)
	})

	t.Run("merges a repeated add into the existing line", func(t *testing.T) {
		msg, err := cartControllers.AddProductToCart(db, user.ID, product.ID, 3)
		require.NoError(t, err)
		assert.Contains(t, msg, "x6")

		var item models.CartItem
		require.NoError(t, db.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&item).Error)
		assert.Equal(t, 6, item.Quantity)
	})

	t.Run("rejects a merge that would exceed the cap without touching the line", func(t *testing.T) {
		_, err := cartControllers.AddProductToCart(db, user.ID, product.ID, 14)

		var limitErr *models.CartLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Contains(t, limitErr.Message, "already 6 item(s)")

		var item models.CartItem
		require.NoError(t, db.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&item).Error)
		assert.Equal(t, 6, item.Quantity)
	})

	t.Run("fails with product not found for an unknown product", func(t *testing.T) {
		_, err := cartControllers.AddProductToCart(db, user.ID, 999, 1)

		var notFound *models.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Contains(t, notFound.Message, "999")
	})
}

func TestUpdateProductQuantity(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "update@example.com")
	product := seedProduct(t, db, "Product 2", 45.86)

	t.Run("soft-fails for a product not in the cart", func(t *testing.T) {
		msg, err := cartControllers.UpdateProductQuantity(db, user.ID, product.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, "The product is not in the cart.", msg)

		var count int64
		db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("overwrites an existing quantity", func(t *testing.T) {
		_, err := cartControllers.AddProductToCart(db, user.ID, product.ID, 2)
		require.NoError(t, err)

		msg, err := cartControllers.UpdateProductQuantity(db, user.ID, product.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, "Quantity has been updated! New quantity: 5", msg)

		var item models.CartItem
		require.NoError(t, db.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&item).Error)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("rejects quantities above the cap and keeps the old quantity", func(t *testing.T) {
		_, err := cartControllers.UpdateProductQuantity(db, user.ID, product.ID, 18)

		var limitErr *models.CartLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Contains(t, limitErr.Message, "Could not update quantity to 18")

		var item models.CartItem
		require.NoError(t, db.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&item).Error)
		assert.Equal(t, 5, item.Quantity)
	})
}

func TestRemoveAndClearCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "remove@example.com")
	product := seedProduct(t, db, "Product 3", 9.99)

	t.Run("remove soft-fails when the product is not in the cart", func(t *testing.T) {
		msg, err := cartControllers.RemoveProductFromCart(db, user.ID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "The product is not in the cart.", msg)
	})

	t.Run("remove deletes the line", func(t *testing.T) {
		_, err := cartControllers.AddProductToCart(db, user.ID, product.ID, 1)
		require.NoError(t, err)

		msg, err := cartControllers.RemoveProductFromCart(db, user.ID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "The product has been removed from your shopping cart.", msg)

		var count int64
		db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("clear deletes all lines once, then reports an empty cart", func(t *testing.T) {
		_, err := cartControllers.AddProductToCart(db, user.ID, product.ID, 2)
		require.NoError(t, err)

		msg, err := cartControllers.ClearCart(db, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cart has been deleted!", msg)

		msg, err = cartControllers.ClearCart(db, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cart is already empty", msg)
	})
}

func TestFindCartItemsByUserSubtotals(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "subtotal@example.com")
	p1 := seedProduct(t, db, "Product 4", 15.49)
	p2 := seedProduct(t, db, "Product 5", 45.86)

	_, err := cartControllers.AddProductToCart(db, user.ID, p1.ID, 2)
	require.NoError(t, err)
	_, err = cartControllers.AddProductToCart(db, user.ID, p2.ID, 1)
	require.NoError(t, err)

	items, err := cartControllers.FindCartItemsByUser(db, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	subtotals := map[uint]float64{}
	for _, item := range items {
		subtotals[item.ProductID] = item.Subtotal()
	}
	assert.InDelta(t, 30.98, subtotals[p1.ID], 0.001)
	assert.InDelta(t, 45.86, subtotals[p2.ID], 0.001)
}

func setupCartRouter(db *gorm.DB, jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(jwtSecret))
	{
		cartGroup.GET("", cartControllers.ViewCart(db))
		cartGroup.POST("/add/:productId/:quantity", cartControllers.AddToCart(db))
		cartGroup.PUT("/update/:productId/:quantity", cartControllers.UpdateQuantity(db))
		cartGroup.DELETE("/remove/:productId", cartControllers.RemoveFromCart(db))
		cartGroup.DELETE("", cartControllers.ClearUserCart(db))
	}
	return r
}

func TestCartHandlers(t *testing.T) {
	const jwtSecret = "test-secret"

	db := setupTestDB(t)
	user := seedUser(t, db, "handler@example.com")
	product := seedProduct(t, db, "Handler Product", 10.00)
	router := setupCartRouter(db, jwtSecret)

	token, err := auth.GenerateToken(user.Email, jwtSecret)
	require.NoError(t, err)

	doRequest := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("rejects requests without a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("adds to the cart and lists it with subtotals", func(t *testing.T) {
		recorder := doRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d/3", product.ID))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Product Handler Product x3 has been added to the cart.", response["message"])

		recorder = doRequest(http.MethodGet, "/cart")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var lines []struct {
			ProductID uint    `json:"product_id"`
			Quantity  int     `json:"quantity"`
			Subtotal  float64 `json:"subtotal"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &lines))
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
		assert.InDelta(t, 30.00, lines[0].Subtotal, 0.001)
	})

	t.Run("maps the cart limit to a 400 with the message body", func(t *testing.T) {
		recorder := doRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d/16", product.ID))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Contains(t, response["error"], "Maximum allowed quantity is 15.")
	})

	t.Run("maps an unknown product to 404", func(t *testing.T) {
		recorder := doRequest(http.MethodPost, "/cart/add/999/1")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("updates, removes and clears through the REST surface", func(t *testing.T) {
		recorder := doRequest(http.MethodPut, fmt.Sprintf("/cart/update/%d/5", product.ID))
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = doRequest(http.MethodDelete, fmt.Sprintf("/cart/remove/%d", product.ID))
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = doRequest(http.MethodDelete, "/cart")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Cart is already empty", response["message"])
	})
}
