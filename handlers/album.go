package handlers

import (
	"errors"
	"net/http"

	"server/db"
	"server/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AlbumCreateRequest struct {
	Name          string                `json:"name" binding:"required"`
	Description   string                `json:"description"`
	Installations []InstallationRequest `json:"installations"`
}

type AlbumUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func AlbumList(c *gin.Context) {
	albums, err := models.AlbumList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, albums)
}

func AlbumGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}
	album, err := models.AlbumByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, album)
}

func AlbumCreate(c *gin.Context) {
	r := AlbumCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	album := models.Album{
		Name:          r.Name,
		Description:   r.Description,
		Installations: []models.Installation{},
	}
	// Installations may be supplied inline at creation; each entry gets the
	// same validation and defaults as the nested endpoint.
	for i, ir := range r.Installations {
		if ir.Image == "" || ir.Title == "" || ir.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "installation image, title and category are required"})
			return
		}
		if ir.Date != "" && !validDate(ir.Date) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "installation date must be in YYYY-MM-DD form"})
			return
		}
		album.Installations = append(album.Installations,
			models.NewInstallation(0, ir.Image, ir.Title, ir.Category, ir.Description, ir.Date, i))
	}
	if err := db.Instance.Create(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, album)
}

func AlbumUpdate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}
	r := AlbumUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	album := models.Album{}
	if err := db.Instance.First(&album, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	// Only name and description can change through this path.
	updates := map[string]interface{}{}
	if r.Name != nil {
		if *r.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if len(updates) > 0 {
		if err := db.Instance.Model(&album).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	updated, err := models.AlbumByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func AlbumDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}
	err := models.AlbumDelete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Album deleted"})
}
