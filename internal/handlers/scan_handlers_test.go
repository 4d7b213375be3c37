package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blitzscan/internal/models"
	"blitzscan/internal/services"
	pkgerrors "blitzscan/pkg/errors"
)

type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) SaveScan(userID uint, url, scanType, status string, data any) (uint, error) {
	args := m.Called(userID, url, scanType, status, data)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockScanService) GetScans(userID uint) ([]services.ScanRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.ScanRecord), args.Error(1)
}

func (m *MockScanService) GetScan(id uint) (*services.ScanRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ScanRecord), args.Error(1)
}

func (m *MockScanService) GetScansByType(userID uint, scanType string) ([]services.ScanRecord, error) {
	args := m.Called(userID, scanType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.ScanRecord), args.Error(1)
}

func (m *MockScanService) HideScan(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockScanService) HideScans(ids []uint, userID uint) error {
	args := m.Called(ids, userID)
	return args.Error(0)
}

func TestSaveScan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		requestBody    string
		setupMock      func(*MockScanService)
		expectedStatus int
		expectedBody   string
		validateMock   func(*testing.T, *MockScanService)
	}{
		{
			name:        "Valid Request - Success",
			path:        "/api/save-scan",
			requestBody: `{"userId":5,"url":"https://example.com","scanType":"nmap","data":{"open_ports":["80/tcp open http"]}}`,
			setupMock: func(m *MockScanService) {
				m.On("SaveScan", uint(5), "https://example.com", "nmap", "", mock.Anything).
					Return(uint(7), nil)
			},
			expectedStatus: 200,
			expectedBody:   `{"success":true,"scan_id":7}`,
			validateMock: func(t *testing.T, m *MockScanService) {
				m.AssertNumberOfCalls(t, "SaveScan", 1)
			},
		},
		{
			name:        "Per-Tool Endpoint Fixes Scan Type",
			path:        "/api/save-whois-scan",
			requestBody: `{"userId":5,"url":"example.com","whoisData":{"registrar":"Example Registrar"}}`,
			setupMock: func(m *MockScanService) {
				m.On("SaveScan", uint(5), "example.com", "whois", "", mock.Anything).
					Return(uint(9), nil)
			},
			expectedStatus: 200,
			expectedBody:   `{"success":true,"scan_id":9}`,
		},
		{
			name:           "Missing Scan Type",
			path:           "/api/save-scan",
			requestBody:    `{"userId":5,"url":"https://example.com"}`,
			setupMock:      func(m *MockScanService) {},
			expectedStatus: 400,
			expectedBody:   `{"success":false,"message":"scanType is required"}`,
			validateMock: func(t *testing.T, m *MockScanService) {
				m.AssertNumberOfCalls(t, "SaveScan", 0)
			},
		},
		{
			name:           "Missing Required Field - userId",
			path:           "/api/save-scan",
			requestBody:    `{"url":"https://example.com","scanType":"nmap"}`,
			setupMock:      func(m *MockScanService) {},
			expectedStatus: 400,
			expectedBody:   `{"success":false,"message":"Invalid request payload"}`,
		},
		{
			name:           "Malformed JSON",
			path:           "/api/save-scan",
			requestBody:    `{"userId":}`,
			setupMock:      func(m *MockScanService) {},
			expectedStatus: 400,
			expectedBody:   `{"success":false,"message":"Invalid request payload"}`,
		},
		{
			name:        "Unknown Scan Type From Service",
			path:        "/api/save-scan",
			requestBody: `{"userId":5,"url":"https://example.com","scanType":"httpx","data":{}}`,
			setupMock: func(m *MockScanService) {
				m.On("SaveScan", uint(5), "https://example.com", "httpx", "", mock.Anything).
					Return(uint(0), errors.New("unknown tool: httpx"))
			},
			expectedStatus: 500,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockScanService)
			tt.setupMock(mockService)

			handler := NewScanHandler(mockService)

			router := gin.New()
			router.POST("/api/save-scan", handler.SaveScan)
			router.POST("/api/save-whois-scan", handler.SaveScanAs("whois"))

			req, err := http.NewRequest("POST", tt.path, strings.NewReader(tt.requestBody))
			assert.NoError(t, err, "Failed to create request")
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code,
				"Expected status %d, got %d. Response: %s",
				tt.expectedStatus, w.Code, w.Body.String())
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			if tt.validateMock != nil {
				tt.validateMock(t, mockService)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestGetScans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockScanService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Valid User - Scans Returned",
			path: "/api/get-scans/5",
			setupMock: func(m *MockScanService) {
				scans := []services.ScanRecord{
					{Scan: models.Scan{ID: 1, UserID: 5, URL: "https://example.com", ScanType: "nmap", Status: models.StatusCompleted}},
				}
				m.On("GetScans", uint(5)).Return(scans, nil)
			},
			expectedStatus: 200,
		},
		{
			name: "Valid User - Empty History",
			path: "/api/get-scans/5",
			setupMock: func(m *MockScanService) {
				m.On("GetScans", uint(5)).Return([]services.ScanRecord{}, nil)
			},
			expectedStatus: 200,
			expectedBody:   `{"success":true,"scans":[]}`,
		},
		{
			name:           "Invalid User ID",
			path:           "/api/get-scans/abc",
			setupMock:      func(m *MockScanService) {},
			expectedStatus: 400,
			expectedBody:   `{"success":false,"message":"Invalid userId"}`,
		},
		{
			name: "Per-Type Listing",
			path: "/api/get-whois-scans/5",
			setupMock: func(m *MockScanService) {
				m.On("GetScansByType", uint(5), "whois").Return([]services.ScanRecord{}, nil)
			},
			expectedStatus: 200,
			expectedBody:   `{"success":true,"scans":[]}`,
		},
		{
			name: "Service Error",
			path: "/api/get-scans/5",
			setupMock: func(m *MockScanService) {
				m.On("GetScans", uint(5)).Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: 500,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockScanService)
			tt.setupMock(mockService)

			handler := NewScanHandler(mockService)

			router := gin.New()
			router.GET("/api/get-scans/:userId", handler.GetScans)
			router.GET("/api/get-whois-scans/:userId", handler.GetScansByType("whois"))

			req, err := http.NewRequest("GET", tt.path, nil)
			assert.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code,
				"Expected status %d, got %d. Response: %s",
				tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestGetScan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockScanService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Scan Found",
			path: "/api/get-scan/3",
			setupMock: func(m *MockScanService) {
				scan := &services.ScanRecord{
					Scan: models.Scan{ID: 3, UserID: 5, URL: "example.com", ScanType: "whois", Status: models.StatusCompleted},
				}
				m.On("GetScan", uint(3)).Return(scan, nil)
			},
			expectedStatus: 200,
		},
		{
			name: "Scan Not Found",
			path: "/api/get-scan/99",
			setupMock: func(m *MockScanService) {
				m.On("GetScan", uint(99)).Return(nil, pkgerrors.ErrNotFoundOrUnauthorized)
			},
			expectedStatus: 404,
			expectedBody:   `{"success":false}`,
		},
		{
			name:           "Invalid ID",
			path:           "/api/get-scan/0",
			setupMock:      func(m *MockScanService) {},
			expectedStatus: 400,
			expectedBody:   `{"success":false,"message":"Invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockScanService)
			tt.setupMock(mockService)

			handler := NewScanHandler(mockService)

			router := gin.New()
			router.GET("/api/get-scan/:id", handler.GetScan)

			req, err := http.NewRequest("GET", tt.path, nil)
			assert.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestHideScans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		requestBody    string
		setupMock      func(*MockScanService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Hide One - Success",
			path:        "/api/hide-scan",
			requestBody: `{"scanId":3,"userId":5}`,
			setupMock: func(m *MockScanService) {
				m.On("HideScan", uint(3), uint(5)).Return(nil)
			},
			expectedStatus: 200,
			expectedBody:   `{"success":true}`,
		},
		{
			name:        "Hide One - Not Owned",
			path:        "/api/hide-scan",
			requestBody: `{"scanId":3,"userId":6}`,
			setupMock: func(m *MockScanService) {
				m.On("HideScan", uint(3), uint(6)).Return(pkgerrors.ErrNotFoundOrUnauthorized)
			},
			expectedStatus: 404,
			expectedBody:   `{"success":false}`,
		},
		{
			name:        "Hide Many - Success",
			path:        "/api/hide-scans",
			requestBody: `{"scanIds":[1,2,3],"userId":5}`,
			setupMock: func(m *MockScanService) {
				m.On("HideScans", []uint{1, 2, 3}, uint(5)).Return(nil)
			},
			expectedStatus: 200,
			expectedBody:   `{"success":true,"message":"Escaneos ocultados"}`,
		},
		{
			name:        "Hide Many - Partial Authorization Rejected",
			path:        "/api/hide-scans",
			requestBody: `{"scanIds":[1,2,99],"userId":5}`,
			setupMock: func(m *MockScanService) {
				m.On("HideScans", []uint{1, 2, 99}, uint(5)).Return(pkgerrors.ErrPartialAuthorization)
			},
			expectedStatus: 404,
			expectedBody:   `{"success":false,"message":"Uno o más escaneos no existen o no pertenecen al usuario"}`,
		},
		{
			name:           "Hide Many - Missing Ids",
			path:           "/api/hide-scans",
			requestBody:    `{"userId":5}`,
			setupMock:      func(m *MockScanService) {},
			expectedStatus: 400,
			expectedBody:   `{"success":false,"message":"Invalid request payload"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockScanService)
			tt.setupMock(mockService)

			handler := NewScanHandler(mockService)

			router := gin.New()
			router.POST("/api/hide-scan", handler.HideScan)
			router.POST("/api/hide-scans", handler.HideScans)

			req, err := http.NewRequest("POST", tt.path, strings.NewReader(tt.requestBody))
			assert.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code,
				"Expected status %d, got %d. Response: %s",
				tt.expectedStatus, w.Code, w.Body.String())
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
