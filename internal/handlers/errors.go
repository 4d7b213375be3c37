package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"blitzscan/pkg/errors"
	"blitzscan/pkg/logger"
)

// apiError maps service errors to responses for the /api endpoints. Ownership
// failures answer 404 without detail so callers cannot probe which scan ids
// exist.
func apiError(c *gin.Context, log *logger.Logger, err error) {
	var vErr *errors.ValidationError
	switch {
	case stderrors.As(err, &vErr):
		c.JSON(400, gin.H{"success": false, "message": vErr.Message})
	case stderrors.Is(err, errors.ErrPartialAuthorization):
		c.JSON(404, gin.H{"success": false, "message": "Uno o más escaneos no existen o no pertenecen al usuario"})
	case stderrors.Is(err, errors.ErrNotFoundOrUnauthorized):
		c.JSON(404, gin.H{"success": false})
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		c.JSON(401, gin.H{"error": "Credenciales incorrectas"})
	case stderrors.Is(err, errors.ErrEmailTaken):
		c.JSON(400, gin.H{"error": "El correo ya está registrado"})
	default:
		log.Error("Request failed:", logger.Fields{"error": err})
		c.JSON(500, gin.H{"error": "Internal server error"})
	}
}
