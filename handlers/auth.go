package handlers

import (
	"crypto/subtle"
	"net/http"

	"server/auth"
	"server/config"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login compares the submitted password against the configured admin secret
// and issues a time-boxed bearer token on match.
func Login(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if config.ADMIN_PASSWORD == "" ||
		subtle.ConstantTimeCompare([]byte(r.Password), []byte(config.ADMIN_PASSWORD)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}
	token, err := auth.IssueToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Verify only confirms that the bearer token passed the auth router.
func Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": true})
}
