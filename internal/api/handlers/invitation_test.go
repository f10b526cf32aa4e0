package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

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

type InvitationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInvitationServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *InvitationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInvitationServiceInterface(suite.ctrl)
	handler := handlers.NewInvitationHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	router := suite.httpSuite.Router
	router.POST("/api/v1/invitations", handler.Invite)
	router.GET("/api/auth/invitations/verify", handler.Verify)
	router.POST("/api/auth/register", handler.Register)
}

func (suite *InvitationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationHandlerTestSuite) TestInvite() {
	suite.T().Run("Uses the Origin header", func(t *testing.T) {
		suite.mockService.EXPECT().
			Invite(gomock.Any(), &service.InviteRequest{Name: "Ana", Email: "ana@example.com"}, "https://app.example.com").
			DoAndReturn(func(_ context.Context, req *service.InviteRequest, _ string) (*service.InvitationResponse, error) {
				return &service.InvitationResponse{
					ID:        uuid.New(),
					Name:      req.Name,
					Email:     req.Email,
					Status:    models.InvitationStatusPending,
					ExpiresAt: time.Now().Add(48 * time.Hour),
				}, nil
			})

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/invitations",
			map[string]interface{}{"name": "Ana", "email": "ana@example.com"},
			map[string]string{"Origin": "https://app.example.com"})

		var response service.InvitationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "ana@example.com", response.Email)
	})

	suite.T().Run("Already registered", func(t *testing.T) {
		suite.mockService.EXPECT().Invite(gomock.Any(), gomock.Any(), "").Return(nil, apperrors.ErrUserExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/invitations", map[string]interface{}{"name": "Ana", "email": "ana@example.com"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Mailer not configured", func(t *testing.T) {
		suite.mockService.EXPECT().Invite(gomock.Any(), gomock.Any(), "").Return(nil, apperrors.ErrMailerNotConfigured)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/invitations", map[string]interface{}{"name": "Ana", "email": "ana@example.com"})

		testutils.AssertErrorResponse(t, recorder, http.StatusServiceUnavailable, "ZEPTO_MAIL_TOKEN")
	})
}

func (suite *InvitationHandlerTestSuite) TestVerify() {
	suite.T().Run("Valid token", func(t *testing.T) {
		suite.mockService.EXPECT().Verify("abc").Return(&service.VerifyInvitationResponse{Email: "ana@example.com", Name: "Ana"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auth/invitations/verify?token=abc", nil)

		var response service.VerifyInvitationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Ana", response.Name)
	})

	suite.T().Run("Expired token", func(t *testing.T) {
		suite.mockService.EXPECT().Verify("old").Return(nil, apperrors.ErrInvitationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auth/invitations/verify?token=old", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "invitation not found")
	})

	suite.T().Run("Missing token", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/auth/invitations/verify", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "token")
	})
}

func (suite *InvitationHandlerTestSuite) TestRegister() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Register(gomock.Any()).Return(&service.MemberResponse{ID: uuid.New(), Name: "Ana"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/register", map[string]interface{}{"token": "t", "password": "secret123"})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Invalid invitation", func(t *testing.T) {
		suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrInvitationExpired)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/register", map[string]interface{}{"token": "t", "password": "secret123"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid or has expired")
	})
}

func TestInvitationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationHandlerTestSuite))
}
