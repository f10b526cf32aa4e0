package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/mocks"
	"ministry-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DocumentServiceTestSuite defines the test suite for DocumentService
type DocumentServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAnalyzer     *mocks.MockDocumentAnalyzer
	mockCalendarRepo *mocks.MockCalendarFileRepositoryInterface
	documentService  *service.DocumentService
	ctx              context.Context
	uploader         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAnalyzer = mocks.NewMockDocumentAnalyzer(suite.ctrl)
	suite.mockCalendarRepo = mocks.NewMockCalendarFileRepositoryInterface(suite.ctrl)
	suite.documentService = service.NewDocumentService(suite.mockAnalyzer, suite.mockCalendarRepo, 1024)
	suite.ctx = context.Background()
	suite.uploader = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DocumentServiceTestSuite) upload(contentType string, data []byte) *service.Upload {
	return &service.Upload{
		FileName:    "marzo.pdf",
		ContentType: contentType,
		Size:        int64(len(data)),
		Reader:      bytes.NewReader(data),
	}
}

func (suite *DocumentServiceTestSuite) TestAnalyze_StoresHistory() {
	data := []byte("%PDF-1.4 calendario")
	analysis := &service.DocumentAnalysis{
		Events:            []service.ExtractedEvent{{Title: "Servicio Dominical", Date: "2024-03-10", Type: "service"}},
		Summary:           "Se encontraron 1 eventos",
		PossibleConflicts: []service.PossibleConflict{},
	}
	suite.mockAnalyzer.EXPECT().Analyze(suite.ctx, data, "application/pdf").Return(analysis, nil)
	suite.mockCalendarRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.CalendarFile) error {
		suite.Equal("marzo.pdf", f.FileName)
		suite.Equal(int64(len(data)), f.FileSize)
		suite.Contains(f.Content, "Servicio Dominical")
		suite.Equal(suite.uploader, *f.UploadedBy)
		return nil
	})

	result, err := suite.documentService.Analyze(suite.ctx, suite.uploader, suite.upload("application/pdf", data))

	suite.Require().NoError(err)
	suite.Equal("marzo.pdf", result.FileName)
	suite.Len(result.Events, 1)
}

func (suite *DocumentServiceTestSuite) TestAnalyze_HistoryFailureIsIgnored() {
	suite.mockAnalyzer.EXPECT().Analyze(gomock.Any(), gomock.Any(), "image/png").Return(&service.DocumentAnalysis{Events: []service.ExtractedEvent{}}, nil)
	suite.mockCalendarRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

	_, err := suite.documentService.Analyze(suite.ctx, suite.uploader, suite.upload("image/png", []byte("png")))
	suite.NoError(err)
}

func (suite *DocumentServiceTestSuite) TestAnalyze_UnreadableResponse() {
	suite.mockAnalyzer.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Return(&service.DocumentAnalysis{
		Events: []service.ExtractedEvent{},
		Error:  "no valid JSON found in response",
	}, nil)

	result, err := suite.documentService.Analyze(suite.ctx, suite.uploader, suite.upload("application/pdf", []byte("x")))

	suite.Require().Error(err)
	suite.True(service.IsAnalysisFailure(err))
	suite.Require().NotNil(result)
	suite.Equal("no valid JSON found in response", result.Error)
}

func (suite *DocumentServiceTestSuite) TestAnalyze_Rejected() {
	_, err := suite.documentService.Analyze(suite.ctx, suite.uploader, suite.upload("text/plain", []byte("x")))
	suite.ErrorIs(err, apperrors.ErrUnsupportedFileType)

	_, err = suite.documentService.Analyze(suite.ctx, suite.uploader, suite.upload("application/pdf", make([]byte, 2048)))
	suite.ErrorIs(err, apperrors.ErrFileTooLarge)

	// declared size is small but the body is not
	big := suite.upload("application/pdf", make([]byte, 2048))
	big.Size = 10
	_, err = suite.documentService.Analyze(suite.ctx, suite.uploader, big)
	suite.ErrorIs(err, apperrors.ErrFileTooLarge)
}

func (suite *DocumentServiceTestSuite) TestAnalyze_NotConfigured() {
	svc := service.NewDocumentService(nil, suite.mockCalendarRepo, 1024)

	_, err := svc.Analyze(suite.ctx, suite.uploader, suite.upload("application/pdf", []byte("x")))
	suite.ErrorIs(err, apperrors.ErrAnalyzerNotConfigured)
}

func (suite *DocumentServiceTestSuite) TestListCalendarFiles() {
	suite.mockCalendarRepo.EXPECT().GetAll(20).Return([]models.CalendarFile{{FileName: "a.pdf"}}, nil)

	files, err := suite.documentService.ListCalendarFiles(0)

	suite.Require().NoError(err)
	suite.Len(files, 1)
	suite.Equal("a.pdf", files[0].FileName)
}

// TestDocumentServiceTestSuite runs the test suite
func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
