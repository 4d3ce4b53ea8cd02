package productControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Stas75687876/verceldingsdabumsda/models"
)

// The admin UI historically sent price and the flag fields both as native
// JSON types and as strings; both forms stay accepted.

type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case bool:
		*b = flexBool(value)
	case string:
		*b = flexBool(value == "true")
	case nil:
		*b = false
	default:
		return errors.New("invalid boolean value")
	}
	return nil
}

type ProductInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Images      []string    `json:"images"`
	Features    []string    `json:"features"`
	IsPopular   flexBool    `json:"isPopular"`
	IsPremium   flexBool    `json:"isPremium"`
}

func (in *ProductInput) parsePrice() (float64, bool) {
	if in.Price.String() == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(in.Price.String(), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// GET /api/products
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen der Produkte"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültige Produkt-ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Produkt nicht gefunden"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen des Produkts"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültiger Request-Body: " + err.Error()})
			return
		}

		price, ok := input.parsePrice()
		if input.Name == "" || input.Description == "" || !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, Beschreibung und Preis sind erforderlich"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       price,
			Images:      input.Images,
			Features:    input.Features,
			IsPopular:   bool(input.IsPopular),
			IsPremium:   bool(input.IsPremium),
		}
		if product.Images == nil {
			product.Images = []string{}
		}
		if product.Features == nil {
			product.Features = []string{}
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Erstellen des Produkts"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültige Produkt-ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Produkt nicht gefunden"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Abrufen des Produkts"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültiger Request-Body: " + err.Error()})
			return
		}

		price, ok := input.parsePrice()
		if input.Name == "" || input.Description == "" || !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, Beschreibung und Preis sind erforderlich"})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = price
		if input.Images != nil {
			product.Images = input.Images
		}
		if input.Features != nil {
			product.Features = input.Features
		}
		product.IsPopular = bool(input.IsPopular)
		product.IsPremium = bool(input.IsPremium)

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Aktualisieren des Produkts"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültige Produkt-ID"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler beim Löschen des Produkts"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produkt nicht gefunden"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Produkt erfolgreich gelöscht"})
	}
}
