//go:build integration
// +build integration

package repository

import (
	"testing"

	"ministry-portal-backend/internal/database/models"
	"ministry-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type FollowUpRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FollowUpRepository
	factories     *testutils.FactorySet
}

func (suite *FollowUpRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewFollowUpRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *FollowUpRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *FollowUpRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *FollowUpRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *FollowUpRepositoryTestSuite) TestGetAllPaginates() {
	for i := 0; i < 5; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.FollowUp.Create()))
	}

	page, total, err := suite.repo.GetAll(2, 4)

	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page, 1)
}

func (suite *FollowUpRepositoryTestSuite) TestUpdateStatus() {
	followUp := suite.factories.FollowUp.Create()
	suite.Require().NoError(suite.repo.Create(followUp))

	suite.NoError(suite.repo.UpdateStatus(followUp.ID, models.TaskStatusDone))

	stored, err := suite.repo.GetByID(followUp.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusDone, stored.Status)

	suite.ErrorIs(suite.repo.UpdateStatus(uuid.New(), models.TaskStatusDone), gorm.ErrRecordNotFound)
}

func (suite *FollowUpRepositoryTestSuite) TestDelete() {
	followUp := suite.factories.FollowUp.Create()
	suite.Require().NoError(suite.repo.Create(followUp))

	suite.NoError(suite.repo.Delete(followUp.ID))
	suite.ErrorIs(suite.repo.Delete(followUp.ID), gorm.ErrRecordNotFound)
}

func TestFollowUpRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FollowUpRepositoryTestSuite))
}
