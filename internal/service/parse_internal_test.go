package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("json wrapped in prose", func(t *testing.T) {
		text := "Claro, aquí está:\n```json\n{\"events\":[{\"title\":\"Culto\",\"date\":\"2024-03-10\",\"type\":\"service\",\"confidence\":0.9}],\"possibleConflicts\":[{\"description\":\"doble\",\"events\":[\"Culto\",\"Ensayo\"]}]}\n```"

		result := parseAnalysis(text)

		require.Empty(t, result.Error)
		require.Len(t, result.Events, 1)
		assert.Equal(t, "Culto", result.Events[0].Title)
		assert.Equal(t, "Se encontraron 1 eventos", result.Summary)
		assert.Len(t, result.PossibleConflicts, 1)
	})

	t.Run("missing lists become empty", func(t *testing.T) {
		result := parseAnalysis(`{"summary":"Nada"}`)

		assert.Empty(t, result.Error)
		assert.NotNil(t, result.Events)
		assert.NotNil(t, result.PossibleConflicts)
		assert.Equal(t, "Nada", result.Summary)
	})

	t.Run("no json", func(t *testing.T) {
		result := parseAnalysis("lo siento, no puedo leer el documento")

		assert.Equal(t, "no valid JSON found in response", result.Error)
		assert.Empty(t, result.Events)
	})

	t.Run("broken json", func(t *testing.T) {
		result := parseAnalysis(`{"events": [ }`)

		assert.NotEmpty(t, result.Error)
		assert.Equal(t, "No se pudo extraer información del documento", result.Summary)
	})
}

func TestSanitizeFileName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "informe.pdf", want: "informe.pdf"},
		{in: "Plan anual (2024).pdf", want: "Plan_anual__2024_.pdf"},
		{in: "canción.mp3", want: "canci_n.mp3"},
		{in: "", want: "file"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, sanitizeFileName(tc.in), tc.in)
	}

	long := sanitizeFileName("a-very-long-file-name-that-keeps-going-and-going-and-going.pdf")
	assert.Len(t, long, 50)
}

func TestInvitationBody(t *testing.T) {
	body := invitationBody("Ana <script>", "https://app.example.com/accept-invite?token=abc", 48)

	assert.Contains(t, body, "Ana &lt;script&gt;")
	assert.Contains(t, body, "https://app.example.com/accept-invite?token=abc")
	assert.Contains(t, body, "48 horas")
}
