package models

import "time"

type Report struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	ScanType  string    `gorm:"column:tipo_escaneo" json:"scan_type"`
	Content   string    `gorm:"column:contenido;type:text" json:"content"`
	Hidden    bool      `gorm:"column:eliminado;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Report) TableName() string { return "reportes" }
