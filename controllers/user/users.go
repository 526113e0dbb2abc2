package userControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/angelstanciu/e-commerce-shop/pagination"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type UserInput struct {
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Password    string    `json:"password" binding:"required"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	BirthDate   time.Time `json:"birth_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapUserStatus(status string) (models.UserStatus, error) {
	switch strings.ToUpper(status) {
	case string(models.UserStatusPending):
		return models.UserStatusPending, nil
	case string(models.UserStatusActive):
		return models.UserStatusActive, nil
	case string(models.UserStatusBlocked):
		return models.UserStatusBlocked, nil
	default:
		return "", errors.New("invalid user status")
	}
}

// -------- Core Logic --------

func FindAllUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Preload("Roles").Find(&users).Error
	return users, err
}

func FindUsersByPage(db *gorm.DB, pageNum, pageSize int, sortField, sortDir string) ([]models.User, error) {
	var users []models.User
	err := db.Scopes(pagination.Paginate(pageNum, pageSize, sortField, sortDir)).Find(&users).Error
	return users, err
}

// FindAllUsersSorted lists every user ordered by birth date ascending, first
// name breaking ties.
func FindAllUsersSorted(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("birth_date asc, first_name asc").Find(&users).Error
	return users, err
}

func FindUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.Preload("Roles").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound(id)
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail is the authentication lookup: a missing user is (nil, nil),
// not an error.
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func SaveUser(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func UpdateUser(db *gorm.DB, id uint, input *UserInput) (*models.User, error) {
	user, err := FindUserByID(db, id)
	if err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	user.Password = string(hashed)
	user.Address = input.Address
	user.PhoneNumber = input.PhoneNumber
	user.BirthDate = input.BirthDate
	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateUserStatus(db *gorm.DB, id uint, status models.UserStatus) (*models.User, error) {
	user, err := FindUserByID(db, id)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := db.Model(&models.User{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUserByID(db *gorm.DB, id uint) error {
	if _, err := FindUserByID(db, id); err != nil {
		return err
	}
	return db.Delete(&models.User{}, id).Error
}

// -------- Handlers --------

func writeUserError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(id), true
}

// GET /users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := FindAllUsers(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /users/page/:pageNum?pageSize=10&sortField=id&sortDir=asc
func GetUsersByPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageNum, err := strconv.Atoi(c.Param("pageNum"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
			return
		}
		pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
		if err != nil || pageSize < 1 {
			pageSize = 10
		}
		sortField := c.DefaultQuery("sortField", "id")
		sortDir := c.DefaultQuery("sortDir", "asc")

		users, err := FindUsersByPage(db, pageNum, pageSize, sortField, sortDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /users/sorted
func GetAllUsersSorted(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := FindAllUsersSorted(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /users/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUserID(c)
		if !ok {
			return
		}
		user, err := FindUserByID(db, id)
		if err != nil {
			writeUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /users
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := models.User{
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Email:       input.Email,
			Password:    string(hashed),
			Address:     input.Address,
			PhoneNumber: input.PhoneNumber,
			BirthDate:   input.BirthDate,
			Status:      models.UserStatusPending,
		}
		if err := SaveUser(db, &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// PUT /users/:id
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUserID(c)
		if !ok {
			return
		}
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := UpdateUser(db, id, &input)
		if err != nil {
			writeUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PATCH /users/:id/update-status
func UpdateUserStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUserID(c)
		if !ok {
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapUserStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := UpdateUserStatus(db, id, status)
		if err != nil {
			writeUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUserID(c)
		if !ok {
			return
		}
		if err := DeleteUserByID(db, id); err != nil {
			writeUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
