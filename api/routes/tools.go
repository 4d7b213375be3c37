package routes

import (
	"github.com/gin-gonic/gin"

	"blitzscan/internal/handlers"
	"blitzscan/internal/notification"
	"blitzscan/internal/services"
	"blitzscan/pkg/runner"
	"blitzscan/pkg/tools"
)

func InitToolRoutes(router *gin.Engine, catalog tools.Catalog, notifier *notification.Client) {
	toolService := services.NewToolService(catalog, runner.NewExecRunner(), notifier)
	h := handlers.NewToolHandler(toolService)

	router.POST("/escanear", h.Nmap)
	router.POST("/whois", h.Whois)
	router.POST("/dir", h.Fuzzing)
	router.POST("/subfinder", h.Subfinder)
	router.POST("/httpx", h.HTTPX)
	router.POST("/whatweb", h.Whatweb)
	router.POST("/paramspider", h.Paramspider)
	router.POST("/theharvester", h.TheHarvester)
}
