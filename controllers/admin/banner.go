package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yenrise/milcolores-api/models"
	"github.com/yenrise/milcolores-api/state"
)

const bannerPublicPath = "/uploads/banners"

// POST /admin/banners/upload — save the carousel image locally and store
// its public path in the DB.
func UploadBanner(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		bannerDir := filepath.Join(app.Config().UploadsDir, "banners")
		if err := os.MkdirAll(bannerDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")

		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
		savePath := filepath.Join(bannerDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		banner := models.Banner{
			ImageURL:  fmt.Sprintf("%s/%s", bannerPublicPath, filename),
			CreatedAt: time.Now(),
		}
		if err := app.DB().Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save banner"})
			return
		}

		c.JSON(http.StatusCreated, banner)
	}
}

// GET /banners — public list for the landing carousel.
func GetBanners(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := app.DB().Order("created_at ASC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// DELETE /admin/banners/:id — remove DB record and local file.
func DeleteBanner(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := app.DB().First(&banner, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := filepath.Join(app.Config().UploadsDir, "banners", filepath.Base(banner.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := app.DB().Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
