package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	t.Run("merges files in lexical order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "02-elections.yaml", `
elections:
  - name: Guild 2026
    status: active
    positions:
      - name: President
        level: university
        candidates:
          - reg_no: S100
            approved: true
`)
		writeFile(t, dir, "01-voters.yml", `
voters:
  - reg_no: S100
    first_name: Amina
    last_name: Okello
    email: amina@uni.test
  - reg_no: S101
    first_name: Brian
    last_name: Mugisha
    email: brian@uni.test
    role: admin
`)
		writeFile(t, dir, "README.txt", "not yaml")

		f, err := Load(dir)
		require.NoError(t, err)
		require.Len(t, f.Voters, 2)
		assert.Equal(t, "S100", f.Voters[0].RegNo)
		require.Len(t, f.Elections, 1)
		require.Len(t, f.Elections[0].Positions, 1)
		assert.True(t, f.Elections[0].Positions[0].Candidates[0].Approved)
	})

	t.Run("rejects duplicate voters", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", "voters:\n  - {reg_no: S1, first_name: A, email: a@uni.test}\n")
		writeFile(t, dir, "b.yaml", "voters:\n  - {reg_no: S1, first_name: B, email: b@uni.test}\n")

		_, err := Load(dir)
		assert.ErrorContains(t, err, "listed twice")
	})

	t.Run("rejects unknown position level", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "e.yaml", "elections:\n  - name: E\n    positions:\n      - {name: P, level: faculty}\n")

		_, err := Load(dir)
		assert.ErrorContains(t, err, "unknown level")
	})

	t.Run("reports malformed yaml with the file name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "broken.yaml", "voters: [")

		_, err := Load(dir)
		assert.ErrorContains(t, err, "broken.yaml")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})
}
