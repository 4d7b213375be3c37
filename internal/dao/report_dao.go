package dao

import (
	"blitzscan/internal/models"

	"gorm.io/gorm"
)

type ReportDAO interface {
	SaveReport(report *models.Report) error
	LatestByScan(scanID uint) (*models.Report, error)
}

type reportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) ReportDAO {
	return &reportDAO{db: db}
}

func (dao *reportDAO) SaveReport(report *models.Report) error {
	return dao.db.Create(report).Error
}

// LatestByScan returns the newest visible report for a scan. Reports are
// append-only, so most-recent-wins happens here on read.
func (dao *reportDAO) LatestByScan(scanID uint) (*models.Report, error) {
	var report models.Report
	if err := dao.db.
		Where("id_escaneo = ? AND eliminado = ?", scanID, false).
		Order("created_at desc").
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
