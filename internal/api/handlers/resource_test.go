package handlers_test

import (
	"net/http"
	"testing"

	"ministry-portal-backend/internal/api/handlers"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/mocks"
	"ministry-portal-backend/internal/service"
	"ministry-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockResourceServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ResourceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockResourceServiceInterface(suite.ctrl)
	handler := handlers.NewResourceHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	resources := suite.httpSuite.Router.Group("/api/v1/resources")
	{
		resources.GET("", handler.ListResources)
		resources.POST("", handler.CreateResource)
		resources.POST("/upload", handler.UploadFile)
		resources.DELETE("/:id", handler.DeleteResource)
	}
}

func (suite *ResourceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ResourceHandlerTestSuite) TestListResourcesByCategory() {
	suite.mockService.EXPECT().ListResources("Discipulado").Return([]service.ResourceResponse{
		{ID: uuid.New(), Title: "Guía", Category: "Discipulado"},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/resources?category=Discipulado", nil)

	var response []service.ResourceResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *ResourceHandlerTestSuite) TestCreateResource() {
	suite.mockService.EXPECT().CreateResource(gomock.Any()).Return(&service.ResourceResponse{ID: uuid.New(), Title: "Guía"}, nil)

	body := map[string]interface{}{"title": "Guía", "category": "Discipulado", "type": "PDF"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/resources", body)

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *ResourceHandlerTestSuite) TestUploadFile() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			UploadFile(gomock.Any()).
			DoAndReturn(func(upload *service.Upload) (*service.UploadResponse, error) {
				assert.Equal(t, "application/pdf", upload.ContentType)
				return &service.UploadResponse{FileURL: "/uploads/resources/1-plan.pdf", FileName: upload.FileName, FileType: upload.ContentType, FileSize: upload.Size}, nil
			})

		recorder := suite.httpSuite.MakeMultipartRequest("/api/v1/resources/upload", "file", "plan.pdf", "application/pdf", []byte("%PDF-1.4"))

		var response service.UploadResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "plan.pdf", response.FileName)
		assert.Equal(t, int64(8), response.FileSize)
	})

	suite.T().Run("Too large", func(t *testing.T) {
		suite.mockService.EXPECT().UploadFile(gomock.Any()).Return(nil, apperrors.ErrFileTooLarge)

		recorder := suite.httpSuite.MakeMultipartRequest("/api/v1/resources/upload", "file", "big.zip", "application/zip", []byte("PK"))

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "size limit")
	})
}

func (suite *ResourceHandlerTestSuite) TestDeleteResource() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteResource(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/resources/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func TestResourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}
