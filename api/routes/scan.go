package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blitzscan/internal/dao"
	"blitzscan/internal/handlers"
	"blitzscan/internal/notification"
	"blitzscan/internal/services"
	"blitzscan/pkg/tools"
)

func InitScanRoutes(router *gin.RouterGroup, db *gorm.DB, notifier *notification.Client) {
	scanDao := dao.NewScanDAO(db)
	scanService := services.NewScanService(scanDao, notifier)
	h := handlers.NewScanHandler(scanService)

	router.POST("/save-scan", h.SaveScan)
	router.POST("/save-whois-scan", h.SaveScanAs(string(tools.KindWhois)))
	router.POST("/save-nmap-scan", h.SaveScanAs(string(tools.KindNmap)))
	router.POST("/save-fuzzing-scan", h.SaveScanAs(string(tools.KindFuzzing)))

	router.GET("/get-scans/:userId", h.GetScans)
	router.GET("/get-scan/:id", h.GetScan)
	router.GET("/get-whois-scans/:userId", h.GetScansByType(string(tools.KindWhois)))
	router.GET("/get-nmap-scans/:userId", h.GetScansByType(string(tools.KindNmap)))
	router.GET("/get-fuzzing-scans/:userId", h.GetScansByType(string(tools.KindFuzzing)))
	router.GET("/get-subfinder-scans/:userId", h.GetScansByType(string(tools.KindSubfinder)))
	router.GET("/get-paramspider-scans/:userId", h.GetScansByType(string(tools.KindParamspider)))
	router.GET("/get-whatweb-scans/:userId", h.GetScansByType(string(tools.KindWhatweb)))
	router.GET("/get-theharvester-scans/:userId", h.GetScansByType(string(tools.KindTheHarvester)))

	router.POST("/hide-scan", h.HideScan)
	router.POST("/hide-scans", h.HideScans)
}
