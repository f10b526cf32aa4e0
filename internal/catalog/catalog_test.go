package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.EventTypes(), 9)
	assert.Len(t, c.Supervisors(), 9)
	assert.Len(t, c.StaffMembers(), 7)
	assert.Equal(t, DefaultEventType, c.DefaultEventType())

	t.Run("identity lookups are case-sensitive", func(t *testing.T) {
		assert.True(t, c.IsSupervisor("HFlower"))
		assert.False(t, c.IsSupervisor("hflower"))
		assert.True(t, c.IsStaff("HFlowers"))
		assert.False(t, c.IsStaff("HFlower"))
	})

	t.Run("the same name may appear in both lists", func(t *testing.T) {
		assert.True(t, c.IsSupervisor("JRodriguez"))
		assert.True(t, c.IsStaff("JRodriguez"))
	})

	t.Run("titles", func(t *testing.T) {
		assert.Equal(t, "Grupos", c.TitleFor("GROUPS"))
		assert.Equal(t, FallbackTitle, c.TitleFor("UNKNOWN"))
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		sup := c.Supervisors()
		sup[0] = "Mallory"
		assert.Equal(t, "RMenjivar", c.Supervisors()[0])
		assert.False(t, c.IsSupervisor("Mallory"))
	})
}

func TestParse(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		c, err := Parse([]byte(`
default_event_type: WORSHIP
event_types:
  - key: WORSHIP
    label: Worship night
  - key: PRAYER
supervisors: [Ana, Luis]
staff_members: [Rosa]
`))
		require.NoError(t, err)
		assert.Equal(t, "WORSHIP", c.DefaultEventType())
		assert.Equal(t, "Worship night", c.TitleFor("WORSHIP"))
		assert.Equal(t, FallbackTitle, c.TitleFor("PRAYER"))
		assert.True(t, c.IsStaff("Rosa"))
	})

	t.Run("default event type falls back to built-in key", func(t *testing.T) {
		_, err := Parse([]byte(`
event_types: [{key: GROUPS}]
supervisors: [Ana]
staff_members: [Rosa]
`))
		assert.ErrorContains(t, err, "default event type")
	})

	t.Run("duplicates rejected", func(t *testing.T) {
		_, err := Parse([]byte(`
event_types: [{key: CHURCH_MEETING_VISTA_AL_MAR}]
supervisors: [Ana, Ana]
staff_members: [Rosa]
`))
		assert.ErrorContains(t, err, "duplicate supervisor")
	})

	t.Run("empty lists rejected", func(t *testing.T) {
		_, err := Parse([]byte(`event_types: []`))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("event_types: [\n"))
		assert.ErrorContains(t, err, "failed to parse catalog")
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.True(t, c.IsEventType("SMILES"))
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
event_types: [{key: CHURCH_MEETING_VISTA_AL_MAR, label: Main}]
supervisors: [Ana]
staff_members: [Rosa]
`), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Main", c.TitleFor(DefaultEventType))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read catalog file")
	})
}
