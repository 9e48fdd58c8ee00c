package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/buddy-service/internal/export"
	"github.com/spec-kit/buddy-service/internal/roster"
)

const rosterYAML = `C-Level:
  Alice:
    email: alice@example.com
    departments: [Engineering]
Engineering:
  - name: Bob
  - name: Eve
Sales:
  - name: Carol
`

func writeRoster(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMatchJSONOutput(t *testing.T) {
	path := writeRoster(t, "roster.yaml", rosterYAML)

	out, err := execute(t, "match", path, "--format", "json", "--seed", "7", "--out", "")
	require.NoError(t, err)

	results, err := export.ReadJSON(strings.NewReader(out))
	require.NoError(t, err)
	covered := 0
	for _, r := range results {
		covered++
		if r.Paired() {
			covered++
		}
	}
	assert.Equal(t, 4, covered)

	again, err := execute(t, "match", path, "--format", "json", "--seed", "7", "--out", "")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestMatchWritesCSVFile(t *testing.T) {
	path := writeRoster(t, "roster.json", `{"Engineering": [{"name": "A"}], "Sales": [{"name": "B"}]}`)
	target := filepath.Join(t.TempDir(), "pairs.csv")

	_, err := execute(t, "match", path, "--format", "csv", "--out", target)
	require.NoError(t, err)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\uFEFF"))
	assert.Len(t, strings.Split(string(raw), "\r\n"), 2)
}

func TestMatchTableOutput(t *testing.T) {
	path := writeRoster(t, "roster.yml", rosterYAML)
	out, err := execute(t, "match", path, "--format", "table", "--out", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Mitarbeiter")
	assert.Contains(t, out, "Alice")
}

func TestMatchErrors(t *testing.T) {
	_, err := execute(t, "match", writeRoster(t, "roster.txt", "{}"), "--format", "json", "--out", "")
	assert.ErrorIs(t, err, roster.ErrUnsupportedFormat)

	_, err = execute(t, "match", writeRoster(t, "roster.json", `{"Engineering": [{"name": "A"}]}`), "--format", "json", "--out", "")
	assert.ErrorIs(t, err, roster.ErrInsufficientDepartments)

	_, err = execute(t, "match", writeRoster(t, "roster.json", `{}`), "--format", "xml", "--out", "")
	assert.Error(t, err)
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	_, err := execute(t, "token", "--subject", "people-ops")
	assert.Error(t, err)

	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	out, err := execute(t, "token", "--subject", "people-ops", "--ttl", "5")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out), "."))
}
