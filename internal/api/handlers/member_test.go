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

// MemberHandlerTestSuite defines the test suite for MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMemberServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMemberServiceInterface(suite.ctrl)
	handler := handlers.NewMemberHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTestAs(testutils.Identity{UserID: suite.userID, Email: "ana@example.com", Role: "MEMBER"})
	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.GET("/members", handler.ListMembers)
		v1.GET("/members/:id", handler.GetMember)
		v1.PUT("/members/:id/supervisor", handler.UpdateSupervisor)
		v1.PUT("/members/:id/staff", handler.UpdateStaff)
		v1.DELETE("/members/:id", handler.DeleteMember)
		v1.GET("/profile", handler.GetProfile)
		v1.PUT("/profile", handler.UpdateProfile)
		v1.POST("/profile/avatar", handler.UploadAvatar)
	}
}

func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string { return &s }

func (suite *MemberHandlerTestSuite) TestListMembers() {
	suite.mockService.EXPECT().ListMembers().Return([]service.MemberResponse{
		{ID: uuid.New(), Name: "Alice", SupervisorName: strPtr("RMenjivar")},
		{ID: uuid.New(), Name: "Carla", IsStaff: true, StaffName: strPtr("NZavala")},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members", nil)

	var response []service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 2)
	suite.Equal("RMenjivar", *response[0].SupervisorName)
	suite.True(response[1].IsStaff)
}

func (suite *MemberHandlerTestSuite) TestGetMember() {
	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetMember(id).Return(nil, apperrors.ErrUserNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "user not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members/123", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid member ID")
	})
}

func (suite *MemberHandlerTestSuite) TestProfile() {
	suite.T().Run("Get uses the caller", func(t *testing.T) {
		suite.mockService.EXPECT().GetProfile(suite.userID).Return(&service.ProfileResponse{ID: suite.userID, Name: "Ana", Role: "MEMBER"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/profile", nil)

		var response service.ProfileResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, suite.userID, response.ID)
	})

	suite.T().Run("Update", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateProfile(suite.userID, &service.UpdateProfileRequest{Name: strPtr("Ana María")}).
			Return(&service.ProfileResponse{ID: suite.userID, Name: "Ana María"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/profile", map[string]interface{}{"name": "Ana María"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Update without fields", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateProfile(suite.userID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("", "name or image is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/profile", map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name or image is required")
	})
}

func (suite *MemberHandlerTestSuite) TestUploadAvatar() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			UploadAvatar(suite.userID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, upload *service.Upload) (*service.ProfileResponse, error) {
				assert.Equal(t, "me.png", upload.FileName)
				assert.Equal(t, "image/png", upload.ContentType)
				assert.Equal(t, int64(4), upload.Size)
				return &service.ProfileResponse{ID: suite.userID, Image: "/uploads/avatars/x.png"}, nil
			})

		recorder := suite.httpSuite.MakeMultipartRequest("/api/v1/profile/avatar", "file", "me.png", "image/png", []byte{0x89, 'P', 'N', 'G'})

		var response service.ProfileResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "/uploads/avatars/x.png", response.Image)
	})

	suite.T().Run("Unsupported type", func(t *testing.T) {
		suite.mockService.EXPECT().UploadAvatar(suite.userID, gomock.Any()).Return(nil, apperrors.ErrUnsupportedFileType)

		recorder := suite.httpSuite.MakeMultipartRequest("/api/v1/profile/avatar", "file", "me.gif", "image/gif", []byte("GIF89a"))

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unsupported file type")
	})

	suite.T().Run("Missing file", func(t *testing.T) {
		recorder := suite.httpSuite.MakeMultipartRequest("/api/v1/profile/avatar", "other", "me.png", "image/png", []byte("x"))

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "No file provided")
	})
}

func (suite *MemberHandlerTestSuite) TestUpdateSupervisor() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateSupervisor(id, &service.UpdateSupervisorRequest{SupervisorName: "Hgaleas"}).
			Return(&service.MemberResponse{ID: id, SupervisorName: strPtr("Hgaleas")}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/members/"+id.String()+"/supervisor", map[string]interface{}{"supervisor_name": "Hgaleas"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Unknown supervisor", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateSupervisor(id, gomock.Any()).
			Return(nil, apperrors.NewValidationError("supervisor_name", `unknown supervisor "X"`))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/members/"+id.String()+"/supervisor", map[string]interface{}{"supervisor_name": "X"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unknown supervisor")
	})
}

func (suite *MemberHandlerTestSuite) TestUpdateStaff() {
	id := uuid.New()
	suite.mockService.EXPECT().
		SetStaffStatus(id, &service.UpdateStaffRequest{IsStaff: true, StaffName: "NZavala"}).
		Return(&service.MemberResponse{ID: id, IsStaff: true, StaffName: strPtr("NZavala")}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/members/"+id.String()+"/staff", map[string]interface{}{"is_staff": true, "staff_name": "NZavala"})

	var response service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.True(response.IsStaff)
}

func (suite *MemberHandlerTestSuite) TestDeleteMember() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteMember(id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/members/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteMember(id).Return(apperrors.ErrUserNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/members/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
