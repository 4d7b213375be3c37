package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blitzscan/internal/config"
	"blitzscan/internal/notification"
	"blitzscan/pkg/tools"
)

func InitRouter(db *gorm.DB, cfg *config.Config, catalog tools.Catalog, notifier *notification.Client) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Static("/uploads", cfg.UploadDir)

	// scanner endpoints live at the root, matching the original clients
	InitToolRoutes(router, catalog, notifier)

	// REST APIs
	api := router.Group("/api")
	{
		InitScanRoutes(api, db, notifier)
		InitUserRoutes(api, db, cfg)
	}
	InitReportRoutes(router, api, db, cfg)

	return router
}
