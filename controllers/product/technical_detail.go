package productController

import (
	"errors"
	"net/http"

	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Core Logic --------

func FindAllTechnicalDetails(db *gorm.DB) ([]models.TechnicalDetail, error) {
	var details []models.TechnicalDetail
	err := db.Find(&details).Error
	return details, err
}

func FindTechnicalDetailByID(db *gorm.DB, id uint) (*models.TechnicalDetail, error) {
	var detail models.TechnicalDetail
	err := db.First(&detail, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTechnicalDetailNotFound(id)
		}
		return nil, err
	}
	return &detail, nil
}

func FindTechnicalDetailsByProductID(db *gorm.DB, productID uint) ([]models.TechnicalDetail, error) {
	var details []models.TechnicalDetail
	err := db.Where("product_id = ?", productID).Find(&details).Error
	return details, err
}

func CreateTechnicalDetail(db *gorm.DB, detail *models.TechnicalDetail) error {
	return db.Create(detail).Error
}

func UpdateTechnicalDetail(db *gorm.DB, id uint, newDetail *models.TechnicalDetail) (*models.TechnicalDetail, error) {
	detail, err := FindTechnicalDetailByID(db, id)
	if err != nil {
		return nil, err
	}
	detail.Name = newDetail.Name
	detail.Value = newDetail.Value
	if newDetail.ProductID != 0 {
		detail.ProductID = newDetail.ProductID
	}
	if err := db.Save(detail).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

func DeleteTechnicalDetailByID(db *gorm.DB, id uint) error {
	if _, err := FindTechnicalDetailByID(db, id); err != nil {
		return err
	}
	return db.Delete(&models.TechnicalDetail{}, id).Error
}

// -------- Handlers --------

func writeTechnicalDetailError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GET /technical-details
func GetTechnicalDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		details, err := FindAllTechnicalDetails(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technical details"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// GET /technical-details/:id
func GetTechnicalDetailByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		detail, err := FindTechnicalDetailByID(db, id)
		if err != nil {
			writeTechnicalDetailError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// GET /technical-details/product/:id
func GetTechnicalDetailsByProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		details, err := FindTechnicalDetailsByProductID(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technical details"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// POST /technical-details
func CreateTechnicalDetailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var detail models.TechnicalDetail
		if err := c.ShouldBindJSON(&detail); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := CreateTechnicalDetail(db, &detail); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create technical detail"})
			return
		}
		c.JSON(http.StatusCreated, detail)
	}
}

// PUT /technical-details/:id
func UpdateTechnicalDetailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var newDetail models.TechnicalDetail
		if err := c.ShouldBindJSON(&newDetail); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		detail, err := UpdateTechnicalDetail(db, id, &newDetail)
		if err != nil {
			writeTechnicalDetailError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// DELETE /technical-details/:id
func DeleteTechnicalDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := DeleteTechnicalDetailByID(db, id); err != nil {
			writeTechnicalDetailError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Technical detail deleted"})
	}
}
