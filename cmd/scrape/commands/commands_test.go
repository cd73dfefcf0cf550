package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtiq-api/packages/core/extract"
)

var fixtures = filepath.Join("..", "..", "..", "packages", "core", "extract", "testdata")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	asJSON = false
	activitySource = "tennisrecruiting"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommandJSON(t *testing.T) {
	out, err := run(t, "list", "--json", filepath.Join(fixtures, "list_page.html"))
	require.NoError(t, err)

	var players []extract.PlayerRecord
	require.NoError(t, json.Unmarshal([]byte(out), &players))
	assert.NotEmpty(t, players)
}

func TestActivityCommandTable(t *testing.T) {
	out, err := run(t, "activity", filepath.Join(fixtures, "activity_tennisrecruiting.html"))
	require.NoError(t, err)
	assert.Contains(t, out, "Jordan Lee")
	assert.Contains(t, out, "R32")
}

func TestActivityCommandRejectsSource(t *testing.T) {
	_, err := run(t, "activity", "--source", "utr", filepath.Join(fixtures, "activity_itf.html"))
	require.ErrorContains(t, err, "unsupported source")
}

func TestRankCommandMissingFile(t *testing.T) {
	_, err := run(t, "rank", filepath.Join(fixtures, "does-not-exist.html"))
	require.Error(t, err)
}
