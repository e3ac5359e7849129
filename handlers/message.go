package handlers

import (
	"net/http"

	"server/db"
	"server/models"

	"github.com/gin-gonic/gin"
)

type MessageCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message" binding:"required"`
}

// MessageCreate accepts public contact-form submissions.
func MessageCreate(c *gin.Context) {
	r := MessageCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if r.Service == "" {
		r.Service = ServiceFallback
	}
	message := models.Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Message: r.Message,
	}
	if err := db.Instance.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, message)
}

func MessageList(c *gin.Context) {
	messages, err := models.MessageList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func MessageDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	result := db.Instance.Delete(&models.Message{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
