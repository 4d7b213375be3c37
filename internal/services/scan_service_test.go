package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blitzscan/internal/models"
	"blitzscan/pkg/errors"
)

type MockScanDAO struct {
	mock.Mock
}

func (m *MockScanDAO) SaveScan(scan *models.Scan, detail models.ScanDetail) (uint, error) {
	args := m.Called(scan, detail)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockScanDAO) GetByID(id uint, includeHidden bool) (*models.Scan, error) {
	args := m.Called(id, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Scan), args.Error(1)
}

func (m *MockScanDAO) ListActiveByUser(userID uint) ([]models.Scan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Scan), args.Error(1)
}

func (m *MockScanDAO) ListActiveByUserAndType(userID uint, scanType string) ([]models.Scan, error) {
	args := m.Called(userID, scanType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Scan), args.Error(1)
}

func (m *MockScanDAO) GetDetailData(scanType string, scanID uint) (string, error) {
	args := m.Called(scanType, scanID)
	return args.String(0), args.Error(1)
}

func (m *MockScanDAO) HideOne(id, ownerID uint) error {
	args := m.Called(id, ownerID)
	return args.Error(0)
}

func (m *MockScanDAO) HideMany(ids []uint, ownerID uint) error {
	args := m.Called(ids, ownerID)
	return args.Error(0)
}

func TestSaveScanDefaultsStatus(t *testing.T) {
	mockDao := new(MockScanDAO)
	mockDao.On("SaveScan", mock.MatchedBy(func(scan *models.Scan) bool {
		return scan.UserID == 5 &&
			scan.ScanType == "nmap" &&
			scan.Status == models.StatusCompleted
	}), mock.AnythingOfType("*models.NmapScan")).Return(uint(7), nil)

	svc := NewScanService(mockDao, nil)

	id, err := svc.SaveScan(5, "https://example.com", "nmap", "", map[string]any{"open_ports": []string{"80/tcp open http"}})
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	mockDao.AssertExpectations(t)
}

func TestSaveScanKeepsExplicitStatus(t *testing.T) {
	mockDao := new(MockScanDAO)
	mockDao.On("SaveScan", mock.MatchedBy(func(scan *models.Scan) bool {
		return scan.Status == models.StatusError
	}), mock.Anything).Return(uint(3), nil)

	svc := NewScanService(mockDao, nil)

	_, err := svc.SaveScan(5, "example.com", "whois", models.StatusError, nil)
	require.NoError(t, err)
	mockDao.AssertExpectations(t)
}

func TestSaveScanRejectsUnknownType(t *testing.T) {
	mockDao := new(MockScanDAO)
	svc := NewScanService(mockDao, nil)

	_, err := svc.SaveScan(5, "example.com", "httpx", "", nil)
	assert.ErrorIs(t, err, errors.ErrUnknownTool)
	mockDao.AssertNumberOfCalls(t, "SaveScan", 0)
}

func TestGetScansAttachesDetails(t *testing.T) {
	mockDao := new(MockScanDAO)
	scans := []models.Scan{
		{ID: 1, UserID: 5, ScanType: "nmap", Status: models.StatusCompleted},
		{ID: 2, UserID: 5, ScanType: "whois", Status: models.StatusCompleted},
	}
	mockDao.On("ListActiveByUser", uint(5)).Return(scans, nil)
	mockDao.On("GetDetailData", "nmap", uint(1)).Return(`{"open_ports":["80/tcp open http"]}`, nil)
	mockDao.On("GetDetailData", "whois", uint(2)).Return("", gorm.ErrRecordNotFound)

	svc := NewScanService(mockDao, nil)

	records, err := svc.GetScans(5)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"open_ports":["80/tcp open http"]}`, string(records[0].Detail))
	assert.Nil(t, records[1].Detail, "a missing detail row should not fail the listing")
}

func TestGetScanNotFound(t *testing.T) {
	mockDao := new(MockScanDAO)
	mockDao.On("GetByID", uint(99), false).Return(nil, gorm.ErrRecordNotFound)

	svc := NewScanService(mockDao, nil)

	_, err := svc.GetScan(99)
	assert.ErrorIs(t, err, errors.ErrNotFoundOrUnauthorized)
}

func TestGetScansByTypeRejectsUnknownType(t *testing.T) {
	mockDao := new(MockScanDAO)
	svc := NewScanService(mockDao, nil)

	_, err := svc.GetScansByType(5, "nessus")
	assert.ErrorIs(t, err, errors.ErrUnknownTool)
	mockDao.AssertNumberOfCalls(t, "ListActiveByUserAndType", 0)
}

func TestHideScansValidatesInput(t *testing.T) {
	mockDao := new(MockScanDAO)
	svc := NewScanService(mockDao, nil)

	err := svc.HideScans(nil, 5)
	var vErr *errors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	mockDao.AssertNumberOfCalls(t, "HideMany", 0)
}

func TestHideScansPassesThrough(t *testing.T) {
	mockDao := new(MockScanDAO)
	mockDao.On("HideMany", []uint{1, 2}, uint(5)).Return(errors.ErrPartialAuthorization)

	svc := NewScanService(mockDao, nil)

	err := svc.HideScans([]uint{1, 2}, 5)
	assert.ErrorIs(t, err, errors.ErrPartialAuthorization)
	mockDao.AssertExpectations(t)
}
