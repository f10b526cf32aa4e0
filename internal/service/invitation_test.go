package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ministry-portal-backend/internal/database/models"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/mocks"
	"ministry-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type prefixHasher struct{}

func (prefixHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockInvitationRepo *mocks.MockInvitationRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockMailer         *mocks.MockMailer
	invitationService  *service.InvitationService
	ctx                context.Context
	now                time.Time
	token              string
}

// SetupTest sets up the test suite
func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvitationRepo = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)
	suite.invitationService = service.NewInvitationService(
		suite.mockInvitationRepo,
		suite.mockUserRepo,
		suite.mockMailer,
		prefixHasher{},
		validator.New(),
		"https://portal.example.com",
		[]string{"https://app.example.com", "*"},
		48*time.Hour,
	)
	suite.ctx = context.Background()
	suite.now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	suite.invitationService.SetClock(func() time.Time { return suite.now })
	suite.token = strings.Repeat("ab", 32)
}

// TearDownTest cleans up after each test
func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationServiceTestSuite) pendingInvitation() *models.Invitation {
	return &models.Invitation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "ana@example.com",
		Name:      "Ana",
		Token:     suite.token,
		ExpiresAt: suite.now.Add(time.Hour),
		Status:    models.InvitationStatusPending,
	}
}

func (suite *InvitationServiceTestSuite) TestInvite_Success() {
	suite.mockInvitationRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)

	var created *models.Invitation
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.Invitation) error {
		inv.ID = uuid.New()
		created = inv
		return nil
	})
	suite.mockMailer.EXPECT().Send(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *service.MailMessage) error {
		suite.Equal("ana@example.com", msg.ToAddress)
		suite.Equal("Ana", msg.ToName)
		suite.Contains(msg.HTMLBody, "https://app.example.com/accept-invite?token="+created.Token)
		suite.Contains(msg.HTMLBody, "48 horas")
		return nil
	})

	resp, err := suite.invitationService.Invite(suite.ctx, &service.InviteRequest{Name: " Ana ", Email: "Ana@Example.com"}, "https://app.example.com/")

	suite.Require().NoError(err)
	suite.Equal(created.ID, resp.ID)
	suite.Equal("ana@example.com", resp.Email)
	suite.Equal("Ana", resp.Name)
	suite.Equal(models.InvitationStatusPending, resp.Status)
	suite.Equal(suite.now.Add(48*time.Hour), resp.ExpiresAt)
	suite.Len(created.Token, 64)
}

func (suite *InvitationServiceTestSuite) TestInvite_FallsBackToBaseURL() {
	suite.mockInvitationRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMailer.EXPECT().Send(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *service.MailMessage) error {
		suite.Contains(msg.HTMLBody, "https://portal.example.com/accept-invite?token=")
		return nil
	})

	_, err := suite.invitationService.Invite(suite.ctx, &service.InviteRequest{Name: "Ana", Email: "ana@example.com"}, "")
	suite.NoError(err)
}

func (suite *InvitationServiceTestSuite) TestInvite_IgnoresUnlistedOrigin() {
	suite.mockInvitationRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMailer.EXPECT().Send(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *service.MailMessage) error {
		suite.Contains(msg.HTMLBody, "https://portal.example.com/accept-invite?token=")
		suite.NotContains(msg.HTMLBody, "attacker.example.net")
		return nil
	})

	_, err := suite.invitationService.Invite(suite.ctx, &service.InviteRequest{Name: "Ana", Email: "ana@example.com"}, "https://attacker.example.net")
	suite.NoError(err)
}

func (suite *InvitationServiceTestSuite) TestInvite_Duplicates() {
	suite.Run("pending invitation", func() {
		suite.mockInvitationRepo.EXPECT().GetByEmail("ana@example.com").Return(suite.pendingInvitation(), nil)

		_, err := suite.invitationService.Invite(suite.ctx, &service.InviteRequest{Name: "Ana", Email: "ana@example.com"}, "")
		suite.ErrorIs(err, apperrors.ErrInvitationExists)
	})

	suite.Run("registered user", func() {
		suite.mockInvitationRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
		suite.mockUserRepo.EXPECT().GetByEmail("ana@example.com").Return(&models.User{Email: "ana@example.com"}, nil)

		_, err := suite.invitationService.Invite(suite.ctx, &service.InviteRequest{Name: "Ana", Email: "ana@example.com"}, "")
		suite.ErrorIs(err, apperrors.ErrUserExists)
	})
}

func (suite *InvitationServiceTestSuite) TestInvite_MailFailureRollsBack() {
	id := uuid.New()
	suite.mockInvitationRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.Invitation) error {
		inv.ID = id
		return nil
	})
	suite.mockMailer.EXPECT().Send(suite.ctx, gomock.Any()).Return(apperrors.ErrMailerNotConfigured)
	suite.mockInvitationRepo.EXPECT().Delete(id).Return(nil)

	resp, err := suite.invitationService.Invite(suite.ctx, &service.InviteRequest{Name: "Ana", Email: "ana@example.com"}, "")

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMailerNotConfigured)
	suite.True(apperrors.IsConfiguration(err))
}

func (suite *InvitationServiceTestSuite) TestInvite_Validation() {
	_, err := suite.invitationService.Invite(suite.ctx, &service.InviteRequest{Name: "Ana", Email: "not-an-email"}, "")
	suite.Require().Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *InvitationServiceTestSuite) TestVerify() {
	suite.Run("usable", func() {
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(suite.pendingInvitation(), nil)

		resp, err := suite.invitationService.Verify(suite.token)
		suite.Require().NoError(err)
		suite.Equal("ana@example.com", resp.Email)
		suite.Equal("Ana", resp.Name)
	})

	suite.Run("expired", func() {
		inv := suite.pendingInvitation()
		inv.ExpiresAt = suite.now.Add(-time.Minute)
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(inv, nil)

		_, err := suite.invitationService.Verify(suite.token)
		suite.ErrorIs(err, apperrors.ErrInvitationNotFound)
	})

	suite.Run("accepted", func() {
		inv := suite.pendingInvitation()
		inv.Status = models.InvitationStatusAccepted
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(inv, nil)

		_, err := suite.invitationService.Verify(suite.token)
		suite.ErrorIs(err, apperrors.ErrInvitationNotFound)
	})

	suite.Run("unknown", func() {
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.invitationService.Verify(suite.token)
		suite.ErrorIs(err, apperrors.ErrInvitationNotFound)
	})

	suite.Run("empty", func() {
		_, err := suite.invitationService.Verify("")
		suite.ErrorIs(err, apperrors.ErrInvitationNotFound)
	})
}

func (suite *InvitationServiceTestSuite) TestRegister_Success() {
	inv := suite.pendingInvitation()
	suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(inv, nil)
	suite.mockUserRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitationRepo.EXPECT().Accept(inv, gomock.Any()).DoAndReturn(func(_ *models.Invitation, user *models.User) error {
		suite.Equal("hashed:secret1", user.PasswordHash)
		suite.Equal(models.UserRoleMember, user.Role)
		user.ID = uuid.New()
		return nil
	})

	resp, err := suite.invitationService.Register(&service.RegisterRequest{Token: suite.token, Password: "secret1"})

	suite.Require().NoError(err)
	suite.Equal("Ana", resp.Name)
	suite.NotEqual(uuid.Nil, resp.ID)
}

func (suite *InvitationServiceTestSuite) TestRegister_Failures() {
	suite.Run("short password", func() {
		_, err := suite.invitationService.Register(&service.RegisterRequest{Token: suite.token, Password: "123"})
		suite.Require().Error(err)
		suite.Contains(err.Error(), "validation failed")
	})

	suite.Run("expired token", func() {
		inv := suite.pendingInvitation()
		inv.ExpiresAt = suite.now
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(inv, nil)

		_, err := suite.invitationService.Register(&service.RegisterRequest{Token: suite.token, Password: "secret1"})
		suite.ErrorIs(err, apperrors.ErrInvitationExpired)
	})

	suite.Run("user already registered", func() {
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(suite.pendingInvitation(), nil)
		suite.mockUserRepo.EXPECT().GetByEmail("ana@example.com").Return(&models.User{}, nil)

		_, err := suite.invitationService.Register(&service.RegisterRequest{Token: suite.token, Password: "secret1"})
		suite.ErrorIs(err, apperrors.ErrUserExists)
	})

	suite.Run("accepted concurrently", func() {
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(suite.pendingInvitation(), nil)
		suite.mockUserRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
		suite.mockInvitationRepo.EXPECT().Accept(gomock.Any(), gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := suite.invitationService.Register(&service.RegisterRequest{Token: suite.token, Password: "secret1"})
		suite.ErrorIs(err, apperrors.ErrInvitationExpired)
	})

	suite.Run("store failure", func() {
		suite.mockInvitationRepo.EXPECT().GetByToken(suite.token).Return(nil, errors.New("db down"))

		_, err := suite.invitationService.Register(&service.RegisterRequest{Token: suite.token, Password: "secret1"})
		suite.Require().Error(err)
		suite.Contains(err.Error(), "failed to get invitation")
	})
}

// TestInvitationServiceTestSuite runs the test suite
func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
