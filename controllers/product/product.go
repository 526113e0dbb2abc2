package productController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/angelstanciu/e-commerce-shop/models"
	"github.com/angelstanciu/e-commerce-shop/pagination"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Core Logic --------

func FindAllProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").Preload("TechnicalDetails").Find(&products).Error
	return products, err
}

func FindProductByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").Preload("TechnicalDetails").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound(id)
		}
		return nil, err
	}
	return &product, nil
}

// SaveProduct persists a product and its technical details in two passes:
// the product row first, so the generated id exists, then the details
// pointing back at it. Runs as one transaction.
func SaveProduct(db *gorm.DB, product *models.Product) error {
	details := product.TechnicalDetails
	product.TechnicalDetails = nil

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].ProductID = product.ID
		}
		if len(details) > 0 {
			if err := tx.Save(&details).Error; err != nil {
				return err
			}
		}
		product.TechnicalDetails = details
		return nil
	})
}

// UpdateProduct copies the incoming fields onto the stored record. The
// technical detail collection is replaced wholesale: old rows deleted, new
// ones saved after the product so they carry its id.
func UpdateProduct(db *gorm.DB, id uint, newProduct *models.Product) (*models.Product, error) {
	product, err := FindProductByID(db, id)
	if err != nil {
		return nil, err
	}

	product.Name = newProduct.Name
	product.Alias = newProduct.Alias
	product.Description = newProduct.Description
	product.Brand = newProduct.Brand
	product.Price = newProduct.Price
	product.Stock = newProduct.Stock
	product.Enabled = newProduct.Enabled
	product.CategoryID = newProduct.CategoryID
	product.Category = nil

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.TechnicalDetail{}).Error; err != nil {
			return err
		}
		product.TechnicalDetails = newProduct.TechnicalDetails
		for i := range product.TechnicalDetails {
			product.TechnicalDetails[i].ProductID = id
		}
		return SaveProduct(tx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProductByID removes a product together with its technical details.
func DeleteProductByID(db *gorm.DB, id uint) error {
	if _, err := FindProductByID(db, id); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.TechnicalDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// FindProductsByPage returns one page of products; the total count is not
// exposed.
func FindProductsByPage(db *gorm.DB, pageNum, pageSize int, sortField, sortDir string) ([]models.Product, error) {
	var products []models.Product
	err := db.Scopes(pagination.Paginate(pageNum, pageSize, sortField, sortDir)).
		Preload("Category").
		Find(&products).Error
	return products, err
}

// -------- Handlers --------

func writeProductError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := FindAllProducts(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		product, err := FindProductByID(db, id)
		if err != nil {
			writeProductError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /products/page/:pageNum?pageSize=10&sortField=id&sortDir=asc
func GetProductsByPage(db *gorm.DB) gin.HandlerFunc {
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

		products, err := FindProductsByPage(db, pageNum, pageSize, sortField, sortDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if product.Price < 0 || product.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price and stock must not be negative"})
			return
		}
		if err := SaveProduct(db, &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /products/:id
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var newProduct models.Product
		if err := c.ShouldBindJSON(&newProduct); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product, err := UpdateProduct(db, id, &newProduct)
		if err != nil {
			writeProductError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := DeleteProductByID(db, id); err != nil {
			writeProductError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
