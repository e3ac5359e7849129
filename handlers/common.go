package handlers

import (
	"strconv"
	"time"

	"server/models"

	"github.com/gin-gonic/gin"
)

// ServiceFallback is stored on contact messages submitted without an
// explicit service selection.
const ServiceFallback = "Security Assessment"

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func validDate(s string) bool {
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return false
	}
	return t.Format(models.DateFormat) == s
}
