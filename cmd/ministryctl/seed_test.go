package main

import (
	"bytes"
	"strings"
	"testing"

	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/database/models"
	"ministry-portal-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }

const seedYAML = `
members:
  - name: Alice
    email: " Alice@Example.com "
    password: secret1
    supervisor_name: RMenjivar
  - name: Carla
    email: carla@example.com
    password: secret2
    role: admin
    is_staff: true
    staff_name: NZavala
`

func TestParseSeedFile(t *testing.T) {
	cat := catalog.Default()

	seed, err := parseSeedFile([]byte(seedYAML), cat)
	require.NoError(t, err)
	require.Len(t, seed.Members, 2)
	assert.Equal(t, "alice@example.com", seed.Members[0].Email)
	assert.Equal(t, "MEMBER", seed.Members[0].Role)
	assert.Equal(t, "ADMIN", seed.Members[1].Role)

	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"missing email", "members:\n  - name: A\n    password: secret1\n", "email is required"},
		{"short password", "members:\n  - name: A\n    email: a@x.com\n    password: abc\n", "at least 6"},
		{"unknown supervisor", "members:\n  - name: A\n    email: a@x.com\n    password: secret1\n    supervisor_name: Nobody\n", "unknown supervisor"},
		{"staff without flag", "members:\n  - name: A\n    email: a@x.com\n    password: secret1\n    staff_name: NZavala\n", "requires is_staff"},
		{"unknown role", "members:\n  - name: A\n    email: a@x.com\n    password: secret1\n    role: owner\n", "unknown role"},
		{"duplicate", "members:\n  - {name: A, email: a@x.com, password: secret1}\n  - {name: B, email: A@x.com, password: secret1}\n", "duplicate email"},
		{"bad yaml", "members: [", "failed to parse"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseSeedFile([]byte(tc.yaml), cat)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestApplySeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)

	seed, err := parseSeedFile([]byte(seedYAML), catalog.Default())
	require.NoError(t, err)

	users.EXPECT().GetByEmail("alice@example.com").Return(&models.User{Email: "alice@example.com"}, nil)
	users.EXPECT().GetByEmail("carla@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, "hashed:secret2", u.PasswordHash)
		assert.Equal(t, models.UserRoleAdmin, u.Role)
		assert.True(t, u.IsStaff)
		require.NotNil(t, u.StaffName)
		assert.Equal(t, "NZavala", *u.StaffName)
		assert.Nil(t, u.SupervisorName)
		return nil
	})

	var out bytes.Buffer
	result, err := applySeed(seed, users, plainHasher{}, &out)

	require.NoError(t, err)
	assert.Equal(t, SeedResult{Created: 1, Skipped: 1}, result)
	assert.Contains(t, out.String(), "skip   alice@example.com")
}

func TestWriteCatalog(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCatalog(&out, catalog.Default()))

	parsed, err := catalog.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Supervisors(), parsed.Supervisors())
	assert.True(t, strings.Contains(out.String(), "default_event_type: CHURCH_MEETING_VISTA_AL_MAR"))
}
