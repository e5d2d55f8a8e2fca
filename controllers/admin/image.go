package adminControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/models"
)

func imageType(raw string) (models.ImageType, bool) {
	switch models.ImageType(raw) {
	case models.ImageTypeFeatured, models.ImageTypeBanner, models.ImageTypeNormal:
		return models.ImageType(raw), true
	case "":
		return models.ImageTypeNormal, true
	}
	return "", false
}

// POST /admin/products/:id/images
// Multipart upload; the file lands under <media root>/products/ and
// the stored path is relative to the media root.
func UploadImage(db *gorm.DB, mediaRoot string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		imgType, ok := imageType(c.PostForm("type"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		uploadDir := filepath.Join(mediaRoot, "products")
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		baseName := strings.ReplaceAll(filepath.Base(fileHeader.Filename), " ", "_")
		fileName := fmt.Sprintf("%d_%s", time.Now().Unix(), baseName)
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadDir, fileName)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		image := models.Image{
			ProductID: product.ID,
			Name:      baseName,
			Path:      filepath.Join("products", fileName),
			Type:      imgType,
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		c.JSON(http.StatusCreated, image)
	}
}

// GET /admin/banners
func ListBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Image
		if err := db.Where("type = ?", models.ImageTypeBanner).Order("name DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}
