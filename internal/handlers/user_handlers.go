package handlers

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blitzscan/internal/services"
	"blitzscan/pkg/logger"
)

type UserHandler struct {
	userService services.UserServiceMethods
	logger      *logger.Logger
}

func NewUserHandler(userService services.UserServiceMethods) *UserHandler {
	return &UserHandler{userService: userService, logger: logger.NewLogger(logrus.InfoLevel)}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	user, err := h.userService.Register(services.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		Organization: req.Organization,
	})
	if err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "user": user})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "user": user})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	if err := h.userService.ChangePassword(req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Contraseña actualizada"})
}

// UpdateProfile accepts a multipart form: text fields plus an optional
// profile image stored under the upload directory.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.PostForm("userId"), 10, 32)
	if err != nil || userID == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid userId"})
		return
	}

	if file, err := c.FormFile("profile_image"); err == nil {
		save := func(fh *multipart.FileHeader, dst string) error {
			return c.SaveUploadedFile(fh, dst)
		}
		if _, err := h.userService.SaveProfileImage(uint(userID), file, save); err != nil {
			apiError(c, h.logger, err)
			return
		}
	}

	user, err := h.userService.UpdateProfile(uint(userID), services.ProfileUpdate{
		FirstName:    c.PostForm("first_name"),
		LastName:     c.PostForm("last_name"),
		Organization: c.PostForm("organization"),
	})
	if err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "user": user})
}
