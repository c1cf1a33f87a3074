package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	t.Run("loads embedded locales", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"en", "fr"}, tr.Languages())
	})

	t.Run("renders template data", func(t *testing.T) {
		got := tr.T("", MsgAnnouncePosition, map[string]interface{}{"Position": "University President"})
		assert.Equal(t, "Now voting for University President. The candidates are: ", got)
	})

	t.Run("accept-language selects locale", func(t *testing.T) {
		got := tr.T("fr-FR,fr;q=0.9", MsgCandidateSelected, map[string]interface{}{"Name": "Amina Said"})
		assert.Equal(t, "Vous avez choisi Amina Said.", got)
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		got := tr.T("de", MsgStartOver, nil)
		assert.Equal(t, "Let's start over. Please select your candidates again.", got)
	})

	t.Run("plural forms", func(t *testing.T) {
		assert.Equal(t, "Voice verification failed. 1 attempt remaining.", tr.Plural("", MsgVerificationFailed, 1, nil))
		assert.Equal(t, "Voice verification failed. 2 attempts remaining.", tr.Plural("", MsgVerificationFailed, 2, nil))
	})

	t.Run("unknown id returns id", func(t *testing.T) {
		assert.Equal(t, "does.not.exist", tr.T("", "does.not.exist", nil))
	})
}
