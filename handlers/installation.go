package handlers

import (
	"errors"
	"net/http"

	"server/db"
	"server/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InstallationRequest struct {
	Image       string `json:"image" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type InstallationUpdateRequest struct {
	Image       *string `json:"image"`
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

// albumExists answers the 404 itself when the album is missing.
func albumExists(c *gin.Context) (uint64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return 0, false
	}
	err := db.Instance.First(&models.Album{}, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return 0, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return 0, false
	}
	return id, true
}

func InstallationCreate(c *gin.Context) {
	albumID, ok := albumExists(c)
	if !ok {
		return
	}
	r := InstallationRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if r.Date != "" && !validDate(r.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD form"})
		return
	}
	position, err := models.NextInstallationPosition(albumID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	installation := models.NewInstallation(albumID, r.Image, r.Title, r.Category, r.Description, r.Date, position)
	if err := db.Instance.Create(&installation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, installation)
}

func InstallationUpdate(c *gin.Context) {
	albumID, ok := albumExists(c)
	if !ok {
		return
	}
	installationID := c.Param("installationId")
	installation := models.Installation{}
	err := db.Instance.Where("id = ? AND album_id = ?", installationID, albumID).First(&installation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Installation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	r := InstallationUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	for field, value := range map[string]*string{
		"image":       r.Image,
		"title":       r.Title,
		"category":    r.Category,
		"description": r.Description,
		"date":        r.Date,
	} {
		if value == nil {
			continue
		}
		if *value == "" && field != "description" {
			c.JSON(http.StatusBadRequest, gin.H{"error": field + " cannot be empty"})
			return
		}
		if field == "date" && !validDate(*value) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD form"})
			return
		}
		updates[field] = *value
	}
	if len(updates) > 0 {
		if err := db.Instance.Model(&installation).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if err := db.Instance.First(&installation, "id = ?", installationID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, installation)
}

// InstallationDelete is idempotent for the installation id: only a missing
// album is an error, deleting an already-removed installation succeeds.
func InstallationDelete(c *gin.Context) {
	albumID, ok := albumExists(c)
	if !ok {
		return
	}
	installationID := c.Param("installationId")
	err := db.Instance.Where("id = ? AND album_id = ?", installationID, albumID).Delete(&models.Installation{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Installation deleted"})
}
