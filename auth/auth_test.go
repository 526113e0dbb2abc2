package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelstanciu/e-commerce-shop/auth"
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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Role{}))
	return db
}

func setupAuthRouter(db *gorm.DB, jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", auth.RegisterHandler(db))
	router.POST("/auth/login", auth.LoginHandler(db, jwtSecret))
	router.GET("/me", middleware.ValidateToken(jwtSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return router
}

func postJSON(router *gin.Engine, path string, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginFlow(t *testing.T) {
	db := setupTestDB(t)
	router := setupAuthRouter(db, "test-secret")

	register := gin.H{
		"first_name": "Nora",
		"last_name":  "Petrescu",
		"email":      "nora@example.com",
		"password":   "longenough",
	}

	w := postJSON(router, "/auth/register", register)
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "nora@example.com").First(&stored).Error)
	assert.Equal(t, models.UserStatusPending, stored.Status)
	assert.NotEqual(t, "longenough", stored.Password)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		w := postJSON(router, "/auth/register", register)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		w := postJSON(router, "/auth/register", gin.H{
			"first_name": "Short",
			"last_name":  "Pass",
			"email":      "short@example.com",
			"password":   "tiny",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login returns a token the middleware accepts", func(t *testing.T) {
		w := postJSON(router, "/auth/login", gin.H{
			"email":    "nora@example.com",
			"password": "longenough",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp["token"])

		me := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+resp["token"])
		router.ServeHTTP(me, req)

		require.Equal(t, http.StatusOK, me.Code)
		assert.Contains(t, me.Body.String(), "nora@example.com")
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		w := postJSON(router, "/auth/login", gin.H{
			"email":    "nora@example.com",
			"password": "wrongpass",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		w := postJSON(router, "/auth/login", gin.H{
			"email":    "ghost@example.com",
			"password": "whatever",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	db := setupTestDB(t)
	router := setupAuthRouter(db, "right-secret")

	token, err := auth.GenerateToken("nora@example.com", "wrong-secret")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMissingTokenIsRejected(t *testing.T) {
	db := setupTestDB(t)
	router := setupAuthRouter(db, "test-secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
