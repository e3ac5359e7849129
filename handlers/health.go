package handlers

import (
	"net/http"

	"server/db"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	connected := false
	if sqlDB, err := db.Instance.DB(); err == nil {
		connected = sqlDB.Ping() == nil
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": connected})
}
