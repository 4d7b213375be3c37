package handlers

import (
	stderrors "errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blitzscan/internal/services"
	"blitzscan/pkg/errors"
	"blitzscan/pkg/logger"
	"blitzscan/pkg/tools"
)

const emptyTargetMessage = "No se recibió ningún objetivo."

// ToolHandler exposes one endpoint per scanner tool. Failures answer with a
// human-readable message inside the resultado field, same shape as success.
type ToolHandler struct {
	toolService services.ToolServiceMethods
	logger      *logger.Logger
}

func NewToolHandler(toolService services.ToolServiceMethods) *ToolHandler {
	return &ToolHandler{toolService: toolService, logger: logger.NewLogger(logrus.InfoLevel)}
}

func (h *ToolHandler) Nmap(c *gin.Context)        { h.run(c, tools.KindNmap) }
func (h *ToolHandler) Whois(c *gin.Context)       { h.run(c, tools.KindWhois) }
func (h *ToolHandler) Fuzzing(c *gin.Context)     { h.run(c, tools.KindFuzzing) }
func (h *ToolHandler) Subfinder(c *gin.Context)   { h.run(c, tools.KindSubfinder) }
func (h *ToolHandler) HTTPX(c *gin.Context)       { h.run(c, tools.KindHTTPX) }
func (h *ToolHandler) Whatweb(c *gin.Context)     { h.run(c, tools.KindWhatweb) }
func (h *ToolHandler) Paramspider(c *gin.Context) { h.run(c, tools.KindParamspider) }
func (h *ToolHandler) TheHarvester(c *gin.Context) {
	h.run(c, tools.KindTheHarvester)
}

func (h *ToolHandler) run(c *gin.Context, kind tools.Kind) {
	var req TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, ToolResponse{Resultado: emptyTargetMessage})
		return
	}

	detail, normalized, err := h.toolService.RunTool(c.Request.Context(), kind, req.Objetivo)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyTarget) {
			c.JSON(400, ToolResponse{Resultado: emptyTargetMessage})
			return
		}
		h.logger.Error("Tool endpoint failed:", logger.Fields{
			"tool":   kind.String(),
			"target": normalized,
			"error":  err,
		})
		c.JSON(500, ToolResponse{Resultado: fmt.Sprintf("Error al ejecutar %s: %v", kind, err)})
		return
	}

	c.JSON(200, ToolResponse{Resultado: detail})
}
