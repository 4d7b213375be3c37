package services

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"blitzscan/internal/dao"
	"blitzscan/internal/models"
	"blitzscan/internal/notification"
	"blitzscan/pkg/errors"
	"blitzscan/pkg/logger"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ScanRecord is an envelope with its stored detail document attached, the
// shape the history endpoints return.
type ScanRecord struct {
	models.Scan
	Detail json.RawMessage `json:"detalles,omitempty"`
}

type ScanServiceMethods interface {
	SaveScan(userID uint, url, scanType, status string, data any) (uint, error)
	GetScans(userID uint) ([]ScanRecord, error)
	GetScan(id uint) (*ScanRecord, error)
	GetScansByType(userID uint, scanType string) ([]ScanRecord, error)
	HideScan(id, userID uint) error
	HideScans(ids []uint, userID uint) error
}

type scanService struct {
	scanDao  dao.ScanDAO
	notifier *notification.Client
	logger   *logger.Logger
}

func NewScanService(scanDao dao.ScanDAO, notifier *notification.Client) ScanServiceMethods {
	return &scanService{
		scanDao:  scanDao,
		notifier: notifier,
		logger:   logger.NewLogger(logrus.InfoLevel),
	}
}

// SaveScan persists an envelope plus its tool detail. The detail payload is
// stored as the client sent it; the server does not reinterpret results at
// save time.
func (s *scanService) SaveScan(userID uint, url, scanType, status string, data any) (uint, error) {
	if status == "" {
		status = models.StatusCompleted
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("failed to encode scan data: %w", err)
	}

	detail, err := detailModelFor(scanType, string(payload))
	if err != nil {
		return 0, err
	}

	scan := &models.Scan{
		UserID:   userID,
		URL:      url,
		ScanType: scanType,
		Status:   status,
	}

	id, err := s.scanDao.SaveScan(scan, detail)
	if err != nil {
		s.logger.Error("SaveScan failed", logger.Fields{"user_id": userID, "scan_type": scanType, "error": err})
		return 0, err
	}

	s.logger.Info("Scan saved", logger.Fields{"scan_id": id, "user_id": userID, "scan_type": scanType})
	if sendErr := s.notifier.ScanSaved(userID, scanType, url); sendErr != nil {
		s.logger.Error("Failed to send notification", logger.Fields{"error": sendErr})
	}

	return id, nil
}

func (s *scanService) GetScans(userID uint) ([]ScanRecord, error) {
	scans, err := s.scanDao.ListActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.attachDetails(scans), nil
}

func (s *scanService) GetScan(id uint) (*ScanRecord, error) {
	scan, err := s.scanDao.GetByID(id, false)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrUnauthorized
		}
		return nil, err
	}

	record := s.attachDetails([]models.Scan{*scan})
	return &record[0], nil
}

func (s *scanService) GetScansByType(userID uint, scanType string) ([]ScanRecord, error) {
	if _, err := detailModelFor(scanType, ""); err != nil {
		return nil, err
	}

	scans, err := s.scanDao.ListActiveByUserAndType(userID, scanType)
	if err != nil {
		return nil, err
	}
	return s.attachDetails(scans), nil
}

func (s *scanService) HideScan(id, userID uint) error {
	return s.scanDao.HideOne(id, userID)
}

func (s *scanService) HideScans(ids []uint, userID uint) error {
	if len(ids) == 0 {
		return errors.NewValidationError("scanIds", "no scan ids provided")
	}
	return s.scanDao.HideMany(ids, userID)
}

func (s *scanService) attachDetails(scans []models.Scan) []ScanRecord {
	records := make([]ScanRecord, 0, len(scans))
	for _, scan := range scans {
		record := ScanRecord{Scan: scan}
		data, err := s.scanDao.GetDetailData(scan.ScanType, scan.ID)
		if err == nil {
			record.Detail = json.RawMessage(data)
		} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("Failed to load scan detail", logger.Fields{"scan_id": scan.ID, "error": err})
		}
		records = append(records, record)
	}
	return records
}

func detailModelFor(scanType, data string) (models.ScanDetail, error) {
	switch scanType {
	case "whois":
		return &models.WhoisScan{Data: data}, nil
	case "nmap":
		return &models.NmapScan{Data: data}, nil
	case "fuzzing":
		return &models.FuzzingScan{Data: data}, nil
	case "subfinder":
		return &models.SubfinderScan{Data: data}, nil
	case "paramspider":
		return &models.ParamspiderScan{Data: data}, nil
	case "whatweb":
		return &models.WhatwebScan{Data: data}, nil
	case "theharvester":
		return &models.TheHarvesterScan{Data: data}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTool, scanType)
	}
}
