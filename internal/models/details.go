package models

import "time"

// One detail table per tool kind, each holding the parsed result as a jsonb
// document keyed to its envelope row.

// ScanDetail lets the DAO bind a detail row to its envelope inside the
// save transaction, once the envelope ID is known.
type ScanDetail interface {
	SetScanID(id uint)
}

func (d *WhoisScan) SetScanID(id uint)        { d.ScanID = id }
func (d *NmapScan) SetScanID(id uint)         { d.ScanID = id }
func (d *FuzzingScan) SetScanID(id uint)      { d.ScanID = id }
func (d *SubfinderScan) SetScanID(id uint)    { d.ScanID = id }
func (d *ParamspiderScan) SetScanID(id uint)  { d.ScanID = id }
func (d *WhatwebScan) SetScanID(id uint)      { d.ScanID = id }
func (d *TheHarvesterScan) SetScanID(id uint) { d.ScanID = id }

type WhoisScan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	Data      string    `gorm:"column:whois_data;type:jsonb" json:"whois_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WhoisScan) TableName() string { return "whois_scans" }

type NmapScan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	Data      string    `gorm:"column:nmap_data;type:jsonb" json:"nmap_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NmapScan) TableName() string { return "nmap_scans" }

type FuzzingScan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	Data      string    `gorm:"column:fuzzing_data;type:jsonb" json:"fuzzing_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FuzzingScan) TableName() string { return "fuzzing_scans" }

type SubfinderScan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	Data      string    `gorm:"column:subfinder_data;type:jsonb" json:"subfinder_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubfinderScan) TableName() string { return "subfinder_scans" }

type ParamspiderScan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	Data      string    `gorm:"column:paramspider_data;type:jsonb" json:"paramspider_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ParamspiderScan) TableName() string { return "paramspider_scans" }

type WhatwebScan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	Data      string    `gorm:"column:whatweb_data;type:jsonb" json:"whatweb_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WhatwebScan) TableName() string { return "whatweb_scans" }

type TheHarvesterScan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ScanID    uint      `gorm:"column:id_escaneo;index" json:"scan_id"`
	Data      string    `gorm:"column:theharvester_data;type:jsonb" json:"theharvester_data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TheHarvesterScan) TableName() string { return "theharvester_scans" }
