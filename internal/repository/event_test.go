//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"ministry-portal-backend/internal/database/models"
	"ministry-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EventRepositoryTestSuite tests the EventRepository
type EventRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EventRepository
	users         *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *EventRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEventRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *EventRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EventRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *EventRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EventRepositoryTestSuite) createMembers(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		member := suite.factories.User.Create()
		suite.Require().NoError(suite.users.Create(member))
		ids[i] = member.ID
	}
	return ids
}

func (suite *EventRepositoryTestSuite) TestCreateWithAssignments() {
	ids := suite.createMembers(2)
	event := suite.factories.Event.WithRoles("RMenjivar", "R.Canaca # 1")
	event.SupervisorID = &ids[0]

	err := suite.repo.CreateWithAssignments(suite.ctx, event, []uuid.UUID{ids[0], ids[1], ids[0]})

	suite.NoError(err)
	stored, err := suite.repo.GetByID(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Len(stored.Assignments, 2)
	suite.Require().NotNil(stored.Supervisor)
	suite.Equal(ids[0], stored.Supervisor.ID)
	for _, a := range stored.Assignments {
		suite.Equal(models.AssignmentRoleMember, a.Role)
		suite.NotEmpty(a.User.Name)
	}
}

func (suite *EventRepositoryTestSuite) TestCreateWithUnknownMemberRollsBack() {
	event := suite.factories.Event.Create()

	err := suite.repo.CreateWithAssignments(suite.ctx, event, []uuid.UUID{uuid.New()})

	suite.Error(err)
	_, err = suite.repo.GetByID(suite.ctx, event.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EventRepositoryTestSuite) TestCreateManyWithAssignments() {
	ids := suite.createMembers(1)
	first := suite.factories.Event.OnDate(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC))
	second := suite.factories.Event.OnDate(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

	err := suite.repo.CreateManyWithAssignments(suite.ctx, []*models.Event{first, second}, ids)

	suite.NoError(err)
	for _, id := range []uuid.UUID{first.ID, second.ID} {
		stored, err := suite.repo.GetByID(suite.ctx, id)
		suite.Require().NoError(err)
		suite.Len(stored.Assignments, 1)
	}
}

func (suite *EventRepositoryTestSuite) TestListByDateRangeIsInclusive() {
	dates := []time.Time{
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		suite.Require().NoError(suite.repo.CreateWithAssignments(suite.ctx, suite.factories.Event.OnDate(d), nil))
	}

	events, err := suite.repo.ListByDateRange(suite.ctx, dates[1], dates[2])

	suite.NoError(err)
	suite.Require().Len(events, 2)
	suite.True(events[0].Date.Equal(dates[1]))
	suite.True(events[1].Date.Equal(dates[2]))
}

func (suite *EventRepositoryTestSuite) TestReplaceWithAssignments() {
	ids := suite.createMembers(3)
	event := suite.factories.Event.Create()
	suite.Require().NoError(suite.repo.CreateWithAssignments(suite.ctx, event, ids[:2]))

	event.Type = "GROUPS"
	event.Title = "Grupos"
	err := suite.repo.ReplaceWithAssignments(suite.ctx, event, []uuid.UUID{ids[2]})

	suite.NoError(err)
	stored, err := suite.repo.GetByID(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal("GROUPS", stored.Type)
	suite.Equal("Grupos", stored.Title)
	suite.Require().Len(stored.Assignments, 1)
	suite.Equal(ids[2], stored.Assignments[0].UserID)
}

func (suite *EventRepositoryTestSuite) TestReplaceKeepsStateOnFailure() {
	ids := suite.createMembers(1)
	event := suite.factories.Event.Create()
	suite.Require().NoError(suite.repo.CreateWithAssignments(suite.ctx, event, ids))

	event.Type = "GROUPS"
	err := suite.repo.ReplaceWithAssignments(suite.ctx, event, []uuid.UUID{uuid.New()})

	suite.Error(err)
	stored, err := suite.repo.GetByID(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal("CHURCH_MEETING_VISTA_AL_MAR", stored.Type)
	suite.Len(stored.Assignments, 1)
}

func (suite *EventRepositoryTestSuite) TestReplaceNotFound() {
	err := suite.repo.ReplaceWithAssignments(suite.ctx, suite.factories.Event.Create(), nil)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EventRepositoryTestSuite) TestDeleteWithAssignments() {
	ids := suite.createMembers(2)
	event := suite.factories.Event.Create()
	suite.Require().NoError(suite.repo.CreateWithAssignments(suite.ctx, event, ids))

	suite.NoError(suite.repo.DeleteWithAssignments(suite.ctx, event.ID))

	_, err := suite.repo.GetByID(suite.ctx, event.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	var remaining int64
	suite.baseTestSuite.DB.Model(&models.Assignment{}).Where("event_id = ?", event.ID).Count(&remaining)
	suite.Zero(remaining)

	suite.ErrorIs(suite.repo.DeleteWithAssignments(suite.ctx, event.ID), gorm.ErrRecordNotFound)
}

func TestEventRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EventRepositoryTestSuite))
}
