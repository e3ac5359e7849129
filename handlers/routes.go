package handlers

import (
	"server/auth"
	"server/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the REST surface. Public routes go straight on the
// engine, admin-only ones through the bearer-checking auth router.
func RegisterRoutes(router *gin.Engine) {
	authRouter := &auth.Router{Base: router}

	// Auth
	router.POST("/api/auth/login", Login)
	authRouter.GET("/api/auth/verify", Verify)

	// Albums (reads are public, writes are admin-only)
	galleryCache := (&utils.CacheRouter{CacheTime: utils.CacheGallery}).Handler()
	router.GET("/api/albums", galleryCache, AlbumList)
	router.GET("/api/albums/:id", galleryCache, AlbumGet)
	authRouter.POST("/api/albums", AlbumCreate)
	authRouter.PUT("/api/albums/:id", AlbumUpdate)
	authRouter.DELETE("/api/albums/:id", AlbumDelete)

	// Installations, nested under their album
	authRouter.POST("/api/albums/:id/installations", InstallationCreate)
	authRouter.PUT("/api/albums/:id/installations/:installationId", InstallationUpdate)
	authRouter.DELETE("/api/albums/:id/installations/:installationId", InstallationDelete)

	// Messages (anyone can submit, only the admin can read or delete)
	router.POST("/api/messages", MessageCreate)
	authRouter.GET("/api/messages", MessageList)
	authRouter.DELETE("/api/messages/:id", MessageDelete)

	// Misc
	router.GET("/api/health", Health)
}
