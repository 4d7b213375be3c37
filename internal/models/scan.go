package models

import "time"

// Scan status values stored in escaneos.estado. The Spanish literals are
// part of the wire contract with existing clients.
const (
	StatusInProgress = "en_proceso"
	StatusCompleted  = "completado"
	StatusError      = "error"
)

// Scan is the tool-agnostic envelope row. The tool-specific result lives in
// the matching detail table keyed by id_escaneo. Rows are never deleted;
// hiding a scan flips eliminado.
type Scan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:id_usuario;index" json:"user_id"`
	URL       string    `json:"url"`
	ScanType  string    `gorm:"column:tipo_escaneo" json:"scan_type"`
	Status    string    `gorm:"column:estado" json:"status"`
	Hidden    bool      `gorm:"column:eliminado;default:false;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Scan) TableName() string { return "escaneos" }
