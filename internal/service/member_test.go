package service_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"ministry-portal-backend/internal/catalog"
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

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockFiles     *mocks.MockFileStore
	memberService *service.MemberService
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockFiles = mocks.NewMockFileStore(suite.ctrl)
	suite.memberService = service.NewMemberService(suite.mockUserRepo, suite.mockFiles, catalog.Default(), validator.New())
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string {
	return &s
}

func (suite *MemberServiceTestSuite) TestListMembers() {
	users := []models.User{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ana", SupervisorName: strPtr("RMenjivar")},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Beto", IsStaff: true, StaffName: strPtr("NZavala")},
	}
	suite.mockUserRepo.EXPECT().GetAll().Return(users, nil)

	members, err := suite.memberService.ListMembers()

	suite.Require().NoError(err)
	suite.Len(members, 2)
	suite.Equal("RMenjivar", *members[0].SupervisorName)
	suite.True(members[1].IsStaff)
}

func (suite *MemberServiceTestSuite) TestSnapshot() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetAll().Return([]models.User{
		{BaseModel: models.BaseModel{ID: id}, Name: "Ana", Image: "/uploads/avatars/a.png", SupervisorName: strPtr("Hgaleas")},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Beto"},
	}, nil)

	members, err := suite.memberService.Snapshot()

	suite.Require().NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal(id, members[0].ID)
	suite.Equal("Hgaleas", members[0].SupervisorName)
	suite.Empty(members[1].SupervisorName)
	suite.Empty(members[1].StaffName)

	suite.mockUserRepo.EXPECT().GetAll().Return(nil, errors.New("db down"))
	_, err = suite.memberService.Snapshot()
	suite.Error(err)
}

func (suite *MemberServiceTestSuite) TestGetProfile_NotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.memberService.GetProfile(id)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *MemberServiceTestSuite) TestUpdateProfile() {
	id := uuid.New()

	suite.Run("name and image", func() {
		suite.mockUserRepo.EXPECT().UpdateProfile(id, map[string]interface{}{"name": "Ana María", "image": "https://img"}).Return(nil)
		suite.mockUserRepo.EXPECT().GetByID(id).Return(&models.User{BaseModel: models.BaseModel{ID: id}, Name: "Ana María", Image: "https://img", Role: models.UserRoleMember}, nil)

		profile, err := suite.memberService.UpdateProfile(id, &service.UpdateProfileRequest{Name: strPtr(" Ana María "), Image: strPtr("https://img")})
		suite.Require().NoError(err)
		suite.Equal("Ana María", profile.Name)
		suite.Equal("MEMBER", profile.Role)
	})

	suite.Run("nothing to change", func() {
		_, err := suite.memberService.UpdateProfile(id, &service.UpdateProfileRequest{})
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("blank name", func() {
		_, err := suite.memberService.UpdateProfile(id, &service.UpdateProfileRequest{Name: strPtr("   ")})
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("missing user", func() {
		suite.mockUserRepo.EXPECT().UpdateProfile(id, gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := suite.memberService.UpdateProfile(id, &service.UpdateProfileRequest{Image: strPtr("")})
		suite.ErrorIs(err, apperrors.ErrUserNotFound)
	})
}

func (suite *MemberServiceTestSuite) TestUploadAvatar() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}, Name: "Ana"}

	suite.Run("stores and links the image", func() {
		suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
		suite.mockFiles.EXPECT().Save("avatars", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, name string, _ io.Reader) (string, error) {
				suite.True(strings.HasPrefix(name, id.String()+"-"))
				suite.True(strings.HasSuffix(name, ".png"))
				return "/uploads/avatars/" + name, nil
			})
		suite.mockUserRepo.EXPECT().UpdateProfile(id, gomock.Any()).Return(nil)
		suite.mockUserRepo.EXPECT().GetByID(id).Return(&models.User{BaseModel: models.BaseModel{ID: id}, Image: "/uploads/avatars/x.png"}, nil)

		profile, err := suite.memberService.UploadAvatar(id, &service.Upload{
			FileName: "me.png", ContentType: "image/png", Size: 10, Reader: strings.NewReader("0123456789"),
		})
		suite.Require().NoError(err)
		suite.Equal("/uploads/avatars/x.png", profile.Image)
	})

	suite.Run("rejects other types", func() {
		_, err := suite.memberService.UploadAvatar(id, &service.Upload{ContentType: "application/pdf", Reader: strings.NewReader("")})
		suite.ErrorIs(err, apperrors.ErrUnsupportedFileType)
	})

	suite.Run("rejects large files", func() {
		_, err := suite.memberService.UploadAvatar(id, &service.Upload{ContentType: "image/jpeg", Size: service.MaxAvatarBytes + 1, Reader: strings.NewReader("")})
		suite.ErrorIs(err, apperrors.ErrFileTooLarge)
	})

	suite.Run("removes the file when the update fails", func() {
		suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
		suite.mockFiles.EXPECT().Save("avatars", gomock.Any(), gomock.Any()).Return("/uploads/avatars/y.webp", nil)
		suite.mockUserRepo.EXPECT().UpdateProfile(id, gomock.Any()).Return(errors.New("db down"))
		suite.mockFiles.EXPECT().Remove("/uploads/avatars/y.webp").Return(nil)

		_, err := suite.memberService.UploadAvatar(id, &service.Upload{ContentType: "image/webp", Size: 1, Reader: strings.NewReader("x")})
		suite.Error(err)
	})
}

func (suite *MemberServiceTestSuite) TestUpdateSupervisor() {
	id := uuid.New()

	suite.mockUserRepo.EXPECT().UpdateSupervisor(id, strPtr("SBrito")).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(id).Return(&models.User{BaseModel: models.BaseModel{ID: id}, SupervisorName: strPtr("SBrito")}, nil)
	member, err := suite.memberService.UpdateSupervisor(id, &service.UpdateSupervisorRequest{SupervisorName: "SBrito"})
	suite.Require().NoError(err)
	suite.Equal("SBrito", *member.SupervisorName)

	suite.mockUserRepo.EXPECT().UpdateSupervisor(id, nil).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(id).Return(&models.User{BaseModel: models.BaseModel{ID: id}}, nil)
	member, err = suite.memberService.UpdateSupervisor(id, &service.UpdateSupervisorRequest{})
	suite.Require().NoError(err)
	suite.Nil(member.SupervisorName)

	_, err = suite.memberService.UpdateSupervisor(id, &service.UpdateSupervisorRequest{SupervisorName: "Nobody"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *MemberServiceTestSuite) TestSetStaffStatus() {
	id := uuid.New()

	suite.mockUserRepo.EXPECT().UpdateStaff(id, true, strPtr("JOrtiz")).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(id).Return(&models.User{BaseModel: models.BaseModel{ID: id}, IsStaff: true, StaffName: strPtr("JOrtiz")}, nil)
	member, err := suite.memberService.SetStaffStatus(id, &service.UpdateStaffRequest{IsStaff: true, StaffName: "JOrtiz"})
	suite.Require().NoError(err)
	suite.True(member.IsStaff)

	// clearing the flag drops the label even when one is sent
	suite.mockUserRepo.EXPECT().UpdateStaff(id, false, nil).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(id).Return(&models.User{BaseModel: models.BaseModel{ID: id}}, nil)
	_, err = suite.memberService.SetStaffStatus(id, &service.UpdateStaffRequest{IsStaff: false, StaffName: "JOrtiz"})
	suite.Require().NoError(err)

	_, err = suite.memberService.SetStaffStatus(id, &service.UpdateStaffRequest{IsStaff: true, StaffName: "Nobody"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *MemberServiceTestSuite) TestDeleteMember() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.memberService.DeleteMember(id), apperrors.ErrUserNotFound)

	suite.mockUserRepo.EXPECT().Delete(id).Return(nil)
	suite.NoError(suite.memberService.DeleteMember(id))
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
