package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blitzscan/internal/config"
	"blitzscan/internal/dao"
	"blitzscan/internal/handlers"
	"blitzscan/internal/services"
)

func InitUserRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	userDao := dao.NewUserDAO(db)
	userService := services.NewUserService(userDao, cfg.UploadDir)
	h := handlers.NewUserHandler(userService)

	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/change-password", h.ChangePassword)
	router.POST("/update-profile", h.UpdateProfile)
}
