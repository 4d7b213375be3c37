package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blitzscan/internal/config"
	"blitzscan/internal/dao"
	"blitzscan/internal/handlers"
	"blitzscan/internal/services"
)

func InitReportRoutes(router *gin.Engine, api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	reportDao := dao.NewReportDAO(db)
	reportService := services.NewReportService(reportDao, cfg.CompletionEndpoint, cfg.CompletionAPIKey, cfg.CompletionModel)
	h := handlers.NewReportHandler(reportService)

	router.POST("/generate_report", h.GenerateReport)
	api.GET("/get-report/:scanId", h.GetReport)
}
