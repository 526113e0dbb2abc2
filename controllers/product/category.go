package productController

import (
	"errors"
	"net/http"

	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Core Logic --------

func FindAllCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Preload("Parent").Find(&categories).Error
	return categories, err
}

func FindCategoryByID(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	err := db.Preload("Parent").First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound(id)
		}
		return nil, err
	}
	return &category, nil
}

// FindCategoriesByParent lists the children of a category. Parent id 0
// selects the top-level categories.
func FindCategoriesByParent(db *gorm.DB, parentID uint) ([]models.Category, error) {
	var categories []models.Category
	query := db
	if parentID == 0 {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", parentID)
	}
	err := query.Find(&categories).Error
	return categories, err
}

func SaveCategory(db *gorm.DB, category *models.Category) error {
	return db.Save(category).Error
}

func UpdateCategory(db *gorm.DB, id uint, newCategory *models.Category) (*models.Category, error) {
	category, err := FindCategoryByID(db, id)
	if err != nil {
		return nil, err
	}
	category.Name = newCategory.Name
	category.Alias = newCategory.Alias
	category.ParentID = newCategory.ParentID
	category.Parent = nil
	if err := db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func DeleteCategoryByID(db *gorm.DB, id uint) error {
	category, err := FindCategoryByID(db, id)
	if err != nil {
		return err
	}
	return db.Delete(category).Error
}

// -------- Handlers --------

func writeCategoryError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := FindAllCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		category, err := FindCategoryByID(db, id)
		if err != nil {
			writeCategoryError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GET /categories/parents/:id
func GetCategoriesByParent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		categories, err := FindCategoriesByParent(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if category.Name == "" || category.Alias == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and alias are required"})
			return
		}
		if err := SaveCategory(db, &category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /categories/:id
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var newCategory models.Category
		if err := c.ShouldBindJSON(&newCategory); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category, err := UpdateCategory(db, id, &newCategory)
		if err != nil {
			writeCategoryError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := DeleteCategoryByID(db, id); err != nil {
			writeCategoryError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
