package service_test

import (
	"testing"
	"time"

	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/mocks"
	"ministry-portal-backend/internal/service"
	"ministry-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FollowUpServiceTestSuite defines the test suite for FollowUpService
type FollowUpServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFollowUpRepo *mocks.MockFollowUpRepositoryInterface
	followUpService  *service.FollowUpService
}

// SetupTest sets up the test suite
func (suite *FollowUpServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFollowUpRepo = mocks.NewMockFollowUpRepositoryInterface(suite.ctrl)
	suite.followUpService = service.NewFollowUpService(suite.mockFollowUpRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *FollowUpServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FollowUpServiceTestSuite) TestCreateFollowUp() {
	req := &service.CreateFollowUpRequest{
		Evangelizer:      "Luis",
		Date:             "2024-03-03",
		FullName:         "Maria Perez",
		Whatsapp:         "+50499990000",
		AcceptedJesus:    "SI",
		AgreedToFollowUp: "SI",
	}
	suite.mockFollowUpRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.FollowUp) error {
		suite.Equal(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), f.Date)
		suite.Equal(models.TaskStatusPending, f.Status)
		f.ID = uuid.New()
		return nil
	})

	resp, err := suite.followUpService.CreateFollowUp(req)

	suite.Require().NoError(err)
	suite.Equal("Maria Perez", resp.FullName)
	suite.Equal(models.TaskStatusPending, resp.Status)
}

func (suite *FollowUpServiceTestSuite) TestCreateFollowUp_Validation() {
	testCases := []struct {
		name    string
		request *service.CreateFollowUpRequest
	}{
		{name: "missing whatsapp", request: &service.CreateFollowUpRequest{Evangelizer: "Luis", Date: "2024-03-03", FullName: "Maria", AcceptedJesus: "SI", AgreedToFollowUp: "SI"}},
		{name: "bad date", request: &service.CreateFollowUpRequest{Evangelizer: "Luis", Date: "03/03/2024", FullName: "Maria", Whatsapp: "1", AcceptedJesus: "SI", AgreedToFollowUp: "SI"}},
		{name: "bad email", request: &service.CreateFollowUpRequest{Evangelizer: "Luis", Date: "2024-03-03", FullName: "Maria", Whatsapp: "1", Email: "maria", AcceptedJesus: "SI", AgreedToFollowUp: "SI"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.followUpService.CreateFollowUp(tc.request)
			suite.Require().Error(err)
			suite.Contains(err.Error(), "validation failed")
		})
	}
}

func (suite *FollowUpServiceTestSuite) TestListFollowUps_Paging() {
	followUp := testutils.NewFollowUpFactory().Create()

	suite.mockFollowUpRepo.EXPECT().GetAll(20, 0).Return([]models.FollowUp{*followUp}, int64(41), nil)
	items, total, err := suite.followUpService.ListFollowUps(0, -5)
	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.Equal(int64(41), total)

	suite.mockFollowUpRepo.EXPECT().GetAll(20, 40).Return([]models.FollowUp{}, int64(41), nil)
	_, _, err = suite.followUpService.ListFollowUps(500, 40)
	suite.Require().NoError(err)

	suite.mockFollowUpRepo.EXPECT().GetAll(50, 10).Return([]models.FollowUp{}, int64(41), nil)
	_, _, err = suite.followUpService.ListFollowUps(50, 10)
	suite.Require().NoError(err)
}

func (suite *FollowUpServiceTestSuite) TestUpdateStatus() {
	followUp := testutils.NewFollowUpFactory().Create()
	followUp.Status = models.TaskStatusDone

	suite.mockFollowUpRepo.EXPECT().UpdateStatus(followUp.ID, models.TaskStatusDone).Return(nil)
	suite.mockFollowUpRepo.EXPECT().GetByID(followUp.ID).Return(followUp, nil)

	resp, err := suite.followUpService.UpdateStatus(followUp.ID, &service.UpdateStatusRequest{Status: models.TaskStatusDone})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusDone, resp.Status)

	suite.mockFollowUpRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(gorm.ErrRecordNotFound)
	_, err = suite.followUpService.UpdateStatus(uuid.New(), &service.UpdateStatusRequest{Status: models.TaskStatusDone})
	suite.ErrorIs(err, apperrors.ErrFollowUpNotFound)
}

func (suite *FollowUpServiceTestSuite) TestDeleteFollowUp() {
	id := uuid.New()
	suite.mockFollowUpRepo.EXPECT().Delete(id).Return(nil)
	suite.NoError(suite.followUpService.DeleteFollowUp(id))
}

// TestFollowUpServiceTestSuite runs the test suite
func TestFollowUpServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FollowUpServiceTestSuite))
}
