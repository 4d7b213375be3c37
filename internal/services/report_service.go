package services

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"blitzscan/internal/dao"
	"blitzscan/internal/models"
	"blitzscan/pkg/errors"
	"blitzscan/pkg/logger"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	reportMaxTokens   = 1000
	reportTemperature = 0.7
	reportHTTPTimeout = 30 * time.Second
)

type ReportServiceMethods interface {
	// GenerateReport asks the completion API for a security report over the
	// scan data. When scanID is non-zero the generated text is also
	// persisted to the report history.
	GenerateReport(ctx context.Context, scanID uint, scanType string, scanData any, extraContext string) (string, error)
	// LatestReport returns the newest stored report for a scan.
	LatestReport(scanID uint) (*models.Report, error)
}

type reportService struct {
	reportDao dao.ReportDAO
	endpoint  string
	apiKey    string
	model     string
	client    *http.Client
	logger    *logger.Logger
}

func NewReportService(reportDao dao.ReportDAO, endpoint, apiKey, model string) ReportServiceMethods {
	return &reportService{
		reportDao: reportDao,
		endpoint:  endpoint,
		apiKey:    apiKey,
		model:     model,
		client:    &http.Client{Timeout: reportHTTPTimeout},
		logger:    logger.NewLogger(logrus.InfoLevel),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *reportService) GenerateReport(ctx context.Context, scanID uint, scanType string, scanData any, extraContext string) (string, error) {
	prompt := securityReportPrompt(scanType, scanData, extraContext)

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   reportMaxTokens,
		Temperature: reportTemperature,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("Completion request failed", logger.Fields{"error": err})
		return "", err
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}

	report := parsed.Choices[0].Message.Content

	if scanID != 0 {
		saveErr := s.reportDao.SaveReport(&models.Report{
			ScanID:   scanID,
			ScanType: scanType,
			Content:  report,
		})
		if saveErr != nil {
			s.logger.Error("Failed to persist report", logger.Fields{"scan_id": scanID, "error": saveErr})
		}
	}

	return report, nil
}

func (s *reportService) LatestReport(scanID uint) (*models.Report, error) {
	report, err := s.reportDao.LatestByScan(scanID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return report, nil
}

const systemPrompt = `Eres BlitzScanIA, un experto asistente de ciberseguridad especializado en análisis de seguridad web. Respondes siempre en español con un tono profesional pero accesible.`

func securityReportPrompt(scanType string, scanData any, extraContext string) string {
	data, err := json.MarshalIndent(scanData, "", "  ")
	if err != nil {
		data = []byte(fmt.Sprintf("%v", scanData))
	}

	prompt := fmt.Sprintf(`TAREA: Generar un reporte de seguridad profesional y estructurado.

INSTRUCCIONES:
- Analiza los datos del escaneo proporcionados
- Identifica vulnerabilidades y riesgos específicos
- Proporciona recomendaciones prácticas y priorizadas
- Estructura la respuesta con secciones claras

FORMATO DEL REPORTE:
## Resumen Ejecutivo
## Vulnerabilidades Detectadas
## Análisis de Riesgo
## Recomendaciones Prioritarias
## Medidas Preventivas

TIPO DE ESCANEO: %s
DATOS DEL ESCANEO:
%s
`, scanType, data)

	if extraContext != "" {
		prompt += fmt.Sprintf("\nCONTEXTO ADICIONAL:\n%s\n", extraContext)
	}
	return prompt
}
