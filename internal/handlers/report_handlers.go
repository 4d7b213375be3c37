package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blitzscan/internal/services"
	"blitzscan/pkg/logger"
)

type ReportHandler struct {
	reportService services.ReportServiceMethods
	logger        *logger.Logger
}

func NewReportHandler(reportService services.ReportServiceMethods) *ReportHandler {
	return &ReportHandler{reportService: reportService, logger: logger.NewLogger(logrus.InfoLevel)}
}

// GenerateReport asks the completion API for a report over the supplied scan
// data. Completion failures still answer 200, with the error text in the
// report field, so the client always has something to show the user.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), req.ScanID, req.ScanType, req.ScanData, req.Context)
	if err != nil {
		h.logger.Error("Report generation failed:", logger.Fields{
			"scan_type": req.ScanType,
			"error":     err,
		})
		c.JSON(200, gin.H{"report": fmt.Sprintf("Error al generar el informe: %v", err)})
		return
	}
	c.JSON(200, gin.H{"report": report})
}

// GetReport returns the most recent stored report for a scan.
func (h *ReportHandler) GetReport(c *gin.Context) {
	scanID, ok := uintParam(c, "scanId")
	if !ok {
		return
	}
	report, err := h.reportService.LatestReport(scanID)
	if err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "report": report})
}
