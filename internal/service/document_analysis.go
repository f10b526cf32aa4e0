package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/logger"
	"ministry-portal-backend/internal/repository"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const calendarExtractionPrompt = `Eres un experto en extraer eventos de calendario de documentos.

Analiza el documento proporcionado (puede ser un PDF de calendario, imagen de horario, o documento de actividades) y extrae TODOS los eventos que encuentres.

Para cada evento, identifica:
1. Título del evento
2. Fecha en formato ISO (YYYY-MM-DD). Si solo hay día de la semana, calcula la fecha más cercana.
3. Hora, si se menciona
4. Personas asignadas
5. Tipo de evento: "service" para servicios religiosos, "practice" para ensayos o reuniones de equipo, "general" para cualquier otro

Extrae todos los eventos aunque falten campos y lista por separado cada instancia de un evento recurrente.

Responde ÚNICAMENTE con un JSON válido en este formato:
{
  "events": [
    {"title": "Servicio Dominical", "date": "2025-12-15", "time": "10:00 AM", "users": ["Juan Pérez"], "type": "service", "confidence": 0.95}
  ],
  "summary": "Se encontraron X eventos en el documento",
  "possibleConflicts": [
    {"description": "Juan Pérez tiene dos eventos el mismo día", "events": ["Evento 1", "Evento 2"]}
  ]
}`

var analyzableTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/webp":      {},
}

// ExtractedEvent is one event read from a calendar document
type ExtractedEvent struct {
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	Time       string   `json:"time,omitempty"`
	Users      []string `json:"users,omitempty"`
	Type       string   `json:"type"`
	Confidence float64  `json:"confidence"`
}

// PossibleConflict is a scheduling clash the model noticed in the document
type PossibleConflict struct {
	Description string   `json:"description"`
	Events      []string `json:"events"`
}

// DocumentAnalysis is the structured result of analysing a calendar document
type DocumentAnalysis struct {
	Events            []ExtractedEvent   `json:"events"`
	Summary           string             `json:"summary"`
	PossibleConflicts []PossibleConflict `json:"possibleConflicts"`
	FileName          string             `json:"fileName,omitempty"`
	Error             string             `json:"error,omitempty"`
}

// CalendarFileResponse represents a stored analysis
type CalendarFileResponse struct {
	ID         uuid.UUID  `json:"id"`
	FileName   string     `json:"file_name"`
	FileSize   int64      `json:"file_size"`
	Content    string     `json:"content"`
	UploadedBy *uuid.UUID `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// GeminiAnalyzer extracts events from documents with a Gemini vision model
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates an analyzer for the Gemini API
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, apperrors.ErrAnalyzerNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiAnalyzer{client: client, model: model}, nil
}

// Analyze sends the document and the extraction prompt to the model
func (a *GeminiAnalyzer) Analyze(ctx context.Context, data []byte, mimeType string) (*DocumentAnalysis, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(calendarExtractionPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	return parseAnalysis(resp.Text()), nil
}

// parseAnalysis reads the JSON object embedded in a model response. Anything
// unreadable yields an empty analysis with Error set.
func parseAnalysis(text string) *DocumentAnalysis {
	empty := func(msg string) *DocumentAnalysis {
		return &DocumentAnalysis{
			Events:            []ExtractedEvent{},
			Summary:           "No se pudo extraer información del documento",
			PossibleConflicts: []PossibleConflict{},
			Error:             msg,
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return empty("no valid JSON found in response")
	}

	var parsed DocumentAnalysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return empty(err.Error())
	}
	if parsed.Events == nil {
		parsed.Events = []ExtractedEvent{}
	}
	if parsed.PossibleConflicts == nil {
		parsed.PossibleConflicts = []PossibleConflict{}
	}
	if parsed.Summary == "" {
		parsed.Summary = fmt.Sprintf("Se encontraron %d eventos", len(parsed.Events))
	}
	parsed.Error = ""
	return &parsed
}

// DocumentService validates uploads, runs the analyzer and keeps a record of
// every successful analysis
type DocumentService struct {
	analyzer DocumentAnalyzer
	files    repository.CalendarFileRepositoryInterface
	maxBytes int64
}

// NewDocumentService creates a new document service. analyzer may be nil when
// no API key is configured.
func NewDocumentService(analyzer DocumentAnalyzer, files repository.CalendarFileRepositoryInterface, maxBytes int64) *DocumentService {
	return &DocumentService{
		analyzer: analyzer,
		files:    files,
		maxBytes: maxBytes,
	}
}

// Analyze extracts events from a PDF or image upload
func (s *DocumentService) Analyze(ctx context.Context, uploaderID uuid.UUID, upload *Upload) (*DocumentAnalysis, error) {
	if s.analyzer == nil {
		return nil, apperrors.ErrAnalyzerNotConfigured
	}
	if _, ok := analyzableTypes[upload.ContentType]; !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, upload.ContentType)
	}
	if upload.Size > s.maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(upload.Reader, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if n > s.maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	result, err := s.analyzer.Analyze(ctx, buf.Bytes(), upload.ContentType)
	if err != nil {
		return nil, err
	}
	result.FileName = upload.FileName
	if result.Error != "" {
		return result, fmt.Errorf("%w: %s", apperrors.ErrDocumentParseFailure, result.Error)
	}

	content, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	record := &models.CalendarFile{
		FileName:   upload.FileName,
		FileSize:   n,
		Content:    string(content),
		UploadedBy: &uploaderID,
	}
	if err := s.files.Create(record); err != nil {
		// history is best effort
		logger.WithContext(ctx).WithError(err).Warn("failed to store calendar file")
	}

	return result, nil
}

// ListCalendarFiles returns the most recent analyses
func (s *DocumentService) ListCalendarFiles(limit int) ([]CalendarFileResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	files, err := s.files.GetAll(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar files: %w", err)
	}
	responses := make([]CalendarFileResponse, len(files))
	for i, f := range files {
		responses[i] = CalendarFileResponse{
			ID:         f.ID,
			FileName:   f.FileName,
			FileSize:   f.FileSize,
			Content:    f.Content,
			UploadedBy: f.UploadedBy,
			CreatedAt:  f.CreatedAt,
		}
	}
	return responses, nil
}

// IsAnalysisFailure reports whether err came from an unreadable model response
func IsAnalysisFailure(err error) bool {
	return errors.Is(err, apperrors.ErrDocumentParseFailure)
}
