//go:build integration
// +build integration

package repository

import (
	"testing"

	"ministry-portal-backend/internal/database/models"
	"ministry-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type InvitationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InvitationRepository
	factories     *testutils.FactorySet
}

func (suite *InvitationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewInvitationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *InvitationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *InvitationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *InvitationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *InvitationRepositoryTestSuite) TestGetByToken() {
	invitation := suite.factories.Invitation.Create()
	suite.Require().NoError(suite.repo.Create(invitation))

	found, err := suite.repo.GetByToken(invitation.Token)

	suite.NoError(err)
	suite.Equal(invitation.Email, found.Email)

	_, err = suite.repo.GetByToken("unknown")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *InvitationRepositoryTestSuite) TestAcceptCreatesUser() {
	invitation := suite.factories.Invitation.Create()
	suite.Require().NoError(suite.repo.Create(invitation))
	user := suite.factories.User.WithEmail(invitation.Email)

	err := suite.repo.Accept(invitation, user)

	suite.NoError(err)
	suite.Equal(models.InvitationStatusAccepted, invitation.Status)
	stored, err := suite.repo.GetByEmail(invitation.Email)
	suite.Require().NoError(err)
	suite.Equal(models.InvitationStatusAccepted, stored.Status)
	_, err = NewUserRepository(suite.baseTestSuite.DB).GetByEmail(invitation.Email)
	suite.NoError(err)
}

func (suite *InvitationRepositoryTestSuite) TestAcceptTwiceRollsBackUser() {
	invitation := suite.factories.Invitation.Create()
	suite.Require().NoError(suite.repo.Create(invitation))
	suite.Require().NoError(suite.repo.Accept(invitation, suite.factories.User.Create()))

	again := suite.factories.User.Create()
	err := suite.repo.Accept(invitation, again)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = NewUserRepository(suite.baseTestSuite.DB).GetByID(again.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestInvitationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationRepositoryTestSuite))
}
