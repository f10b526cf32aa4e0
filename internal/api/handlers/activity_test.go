package handlers_test

import (
	"net/http"
	"testing"

	"ministry-portal-backend/internal/api/handlers"
	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/mocks"
	"ministry-portal-backend/internal/service"
	"ministry-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ActivityHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockActivityServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *ActivityHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockActivityServiceInterface(suite.ctrl)
	handler := handlers.NewActivityHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTestAs(testutils.Identity{UserID: suite.userID, Role: "MEMBER"})
	activities := suite.httpSuite.Router.Group("/api/v1/activities")
	{
		activities.GET("", handler.ListActivities)
		activities.POST("", handler.CreateActivity)
		activities.PUT("/:id/status", handler.UpdateStatus)
		activities.DELETE("/:id", handler.DeleteActivity)
		activities.POST("/:id/updates", handler.AddUpdate)
	}
}

func (suite *ActivityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActivityHandlerTestSuite) TestListActivities() {
	suite.mockService.EXPECT().ListActivities().Return([]service.ActivityResponse{
		{ID: uuid.New(), Name: "Retiro", Status: models.TaskStatusPending},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/activities", nil)

	var response []service.ActivityResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *ActivityHandlerTestSuite) TestCreateActivity() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().CreateActivity(gomock.Any()).Return(&service.ActivityResponse{ID: uuid.New(), Name: "Retiro"}, nil)

		body := map[string]interface{}{"name": "Retiro", "responsible_id": uuid.New().String()}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/activities", body)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Responsible missing", func(t *testing.T) {
		suite.mockService.EXPECT().CreateActivity(gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

		body := map[string]interface{}{"name": "Retiro", "responsible_id": uuid.New().String()}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/activities", body)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *ActivityHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateStatus(id, &service.UpdateStatusRequest{Status: models.TaskStatusDone}).
			Return(&service.ActivityResponse{ID: id, Status: models.TaskStatusDone}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/activities/"+id.String()+"/status", map[string]interface{}{"status": "DONE"})

		var response service.ActivityResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.TaskStatusDone, response.Status)
	})

	suite.T().Run("Invalid status", func(t *testing.T) {
		suite.mockService.EXPECT().UpdateStatus(id, gomock.Any()).Return(nil, apperrors.ErrInvalidStatus)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/activities/"+id.String()+"/status", map[string]interface{}{"status": "LATER"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid status")
	})
}

func (suite *ActivityHandlerTestSuite) TestDeleteActivity() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteActivity(id).Return(apperrors.ErrActivityNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/activities/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "activity not found")
}

func (suite *ActivityHandlerTestSuite) TestAddUpdateUsesCaller() {
	id := uuid.New()
	suite.mockService.EXPECT().
		AddUpdate(id, suite.userID, &service.CreateActivityUpdateRequest{Title: "Avance", Content: "Se reservó el lugar"}).
		Return(&service.ActivityUpdateResponse{ID: uuid.New(), Title: "Avance"}, nil)

	body := map[string]interface{}{"title": "Avance", "content": "Se reservó el lugar"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/activities/"+id.String()+"/updates", body)

	suite.Equal(http.StatusCreated, recorder.Code)
}

func TestActivityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityHandlerTestSuite))
}
