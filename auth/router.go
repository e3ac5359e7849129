package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Router is a wrapper class that adds the bearer token check to admin-only
// routes. Missing credential and invalid credential are answered
// differently (401 vs 403) so the client can tell "log in" from "log in
// again".
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler gin.HandlerFunc) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}
	if _, err := ValidateToken(token); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		return
	}
	handler(c)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func (cr *Router) GET(path string, handler gin.HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler gin.HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) PUT(path string, handler gin.HandlerFunc) {
	cr.Base.PUT(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler gin.HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
