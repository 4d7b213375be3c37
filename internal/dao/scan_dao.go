package dao

import (
	"blitzscan/internal/models"
	"blitzscan/pkg/errors"

	"gorm.io/gorm"
)

type ScanDAO interface {
	SaveScan(scan *models.Scan, detail models.ScanDetail) (uint, error)
	GetByID(id uint, includeHidden bool) (*models.Scan, error)
	ListActiveByUser(userID uint) ([]models.Scan, error)
	ListActiveByUserAndType(userID uint, scanType string) ([]models.Scan, error)
	GetDetailData(scanType string, scanID uint) (string, error)
	HideOne(id, ownerID uint) error
	HideMany(ids []uint, ownerID uint) error
}

type scanDAO struct {
	db *gorm.DB
}

func NewScanDAO(db *gorm.DB) ScanDAO {
	return &scanDAO{db: db}
}

// SaveScan writes the envelope and its tool-specific detail in one
// transaction. A nil detail saves the envelope alone.
func (dao *scanDAO) SaveScan(scan *models.Scan, detail models.ScanDetail) (uint, error) {
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scan).Error; err != nil {
			return err
		}
		if detail != nil {
			detail.SetScanID(scan.ID)
			if err := tx.Create(detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return scan.ID, nil
}

func (dao *scanDAO) GetByID(id uint, includeHidden bool) (*models.Scan, error) {
	query := dao.db.Where("id = ?", id)
	if !includeHidden {
		query = query.Where("eliminado = ?", false)
	}

	var scan models.Scan
	if err := query.First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (dao *scanDAO) ListActiveByUser(userID uint) ([]models.Scan, error) {
	var scans []models.Scan
	if err := dao.db.
		Where("id_usuario = ? AND eliminado = ?", userID, false).
		Order("created_at desc").
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

func (dao *scanDAO) ListActiveByUserAndType(userID uint, scanType string) ([]models.Scan, error) {
	var scans []models.Scan
	if err := dao.db.
		Where("id_usuario = ? AND tipo_escaneo = ? AND eliminado = ?", userID, scanType, false).
		Order("created_at desc").
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

// GetDetailData fetches the stored jsonb document for a scan.
func (dao *scanDAO) GetDetailData(scanType string, scanID uint) (string, error) {
	byScan := dao.db.Where("id_escaneo = ?", scanID)

	switch scanType {
	case "whois":
		var d models.WhoisScan
		if err := byScan.First(&d).Error; err != nil {
			return "", err
		}
		return d.Data, nil
	case "nmap":
		var d models.NmapScan
		if err := byScan.First(&d).Error; err != nil {
			return "", err
		}
		return d.Data, nil
	case "fuzzing":
		var d models.FuzzingScan
		if err := byScan.First(&d).Error; err != nil {
			return "", err
		}
		return d.Data, nil
	case "subfinder":
		var d models.SubfinderScan
		if err := byScan.First(&d).Error; err != nil {
			return "", err
		}
		return d.Data, nil
	case "paramspider":
		var d models.ParamspiderScan
		if err := byScan.First(&d).Error; err != nil {
			return "", err
		}
		return d.Data, nil
	case "whatweb":
		var d models.WhatwebScan
		if err := byScan.First(&d).Error; err != nil {
			return "", err
		}
		return d.Data, nil
	case "theharvester":
		var d models.TheHarvesterScan
		if err := byScan.First(&d).Error; err != nil {
			return "", err
		}
		return d.Data, nil
	default:
		return "", errors.ErrUnknownTool
	}
}

// HideOne soft-deletes a scan owned by ownerID. Missing, foreign and
// already-hidden rows all produce the same error so callers cannot probe
// other users' scan IDs.
func (dao *scanDAO) HideOne(id, ownerID uint) error {
	result := dao.db.Model(&models.Scan{}).
		Where("id = ? AND id_usuario = ? AND eliminado = ?", id, ownerID, false).
		Update("eliminado", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFoundOrUnauthorized
	}
	return nil
}

// HideMany soft-deletes a batch all-or-nothing: unless every requested row
// is an active scan owned by ownerID, nothing is mutated.
func (dao *scanDAO) HideMany(ids []uint, ownerID uint) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Scan{}).
			Where("id IN ? AND id_usuario = ? AND eliminado = ?", ids, ownerID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return errors.ErrPartialAuthorization
		}

		return tx.Model(&models.Scan{}).
			Where("id IN ? AND id_usuario = ?", ids, ownerID).
			Update("eliminado", true).Error
	})
}
