package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blitzscan/internal/services"
	"blitzscan/pkg/logger"
)

type ScanHandler struct {
	scanService services.ScanServiceMethods
	logger      *logger.Logger
}

func NewScanHandler(scanService services.ScanServiceMethods) *ScanHandler {
	return &ScanHandler{scanService: scanService, logger: logger.NewLogger(logrus.InfoLevel)}
}

// SaveScan persists a scan envelope plus whatever detail payload the client
// sent. The scan type comes from the request body.
func (h *ScanHandler) SaveScan(c *gin.Context) {
	var req SaveScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	if req.ScanType == "" {
		c.JSON(400, gin.H{"success": false, "message": "scanType is required"})
		return
	}
	h.save(c, &req, req.ScanType)
}

// SaveScanAs returns a handler with the scan type fixed, for the per-tool
// save endpoints.
func (h *ScanHandler) SaveScanAs(scanType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
			c.JSON(400, gin.H{"success": false, "message": "Invalid request payload"})
			return
		}
		h.save(c, &req, scanType)
	}
}

func (h *ScanHandler) save(c *gin.Context, req *SaveScanRequest, scanType string) {
	id, err := h.scanService.SaveScan(req.UserID, req.URL, scanType, req.Estado, req.payload())
	if err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, SaveScanResponse{Success: true, ScanID: id})
}

func (h *ScanHandler) GetScans(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	scans, err := h.scanService.GetScans(userID)
	if err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "scans": scans})
}

func (h *ScanHandler) GetScan(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	scan, err := h.scanService.GetScan(id)
	if err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "scan": scan})
}

// GetScansByType returns a handler listing one tool's scan history for a user.
func (h *ScanHandler) GetScansByType(scanType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := uintParam(c, "userId")
		if !ok {
			return
		}
		scans, err := h.scanService.GetScansByType(userID, scanType)
		if err != nil {
			apiError(c, h.logger, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "scans": scans})
	}
}

func (h *ScanHandler) HideScan(c *gin.Context) {
	var req HideScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	if err := h.scanService.HideScan(req.ScanID, req.UserID); err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func (h *ScanHandler) HideScans(c *gin.Context) {
	var req HideScansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	if err := h.scanService.HideScans(req.ScanIDs, req.UserID); err != nil {
		apiError(c, h.logger, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Escaneos ocultados"})
}

// uintParam parses a numeric path parameter, answering 400 itself when the
// value is not a positive integer.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
