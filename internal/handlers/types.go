package handlers

import "encoding/json"

// TargetRequest is the body every scanner endpoint accepts.
type TargetRequest struct {
	Objetivo string `json:"objetivo" binding:"required"`
}

// ToolResponse carries either a parsed detail record or a human-readable
// failure message in the same field.
type ToolResponse struct {
	Resultado any `json:"resultado"`
}

type SaveScanRequest struct {
	UserID   uint   `json:"userId" binding:"required"`
	URL      string `json:"url" binding:"required"`
	ScanType string `json:"scanType"`
	Estado   string `json:"estado"`

	// One of these carries the tool detail, depending on which client
	// endpoint was called.
	WhoisData   json.RawMessage `json:"whoisData"`
	NmapData    json.RawMessage `json:"nmapData"`
	FuzzingData json.RawMessage `json:"fuzzingData"`
	Data        json.RawMessage `json:"data"`
}

// payload returns whichever detail field the client filled in.
func (r *SaveScanRequest) payload() json.RawMessage {
	for _, p := range []json.RawMessage{r.WhoisData, r.NmapData, r.FuzzingData, r.Data} {
		if len(p) > 0 {
			return p
		}
	}
	return nil
}

type SaveScanResponse struct {
	Success bool `json:"success"`
	ScanID  uint `json:"scan_id"`
}

type HideScanRequest struct {
	ScanID uint `json:"scanId" binding:"required"`
	UserID uint `json:"userId" binding:"required"`
}

type HideScansRequest struct {
	ScanIDs []uint `json:"scanIds" binding:"required"`
	UserID  uint   `json:"userId" binding:"required"`
}

type GenerateReportRequest struct {
	ScanID   uint   `json:"scan_id"`
	ScanType string `json:"scan_type" binding:"required"`
	ScanData any    `json:"scan_data"`
	Context  string `json:"context"`
}

type RegisterRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Organization string `json:"organization"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	UserID          uint   `json:"userId" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
