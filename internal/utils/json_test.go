package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Level int      `json:"level"`
	Tags  []string `json:"tags"`
}

func TestSaveThenLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")

	require.NoError(t, SaveJSON(path, snapshot{Level: 7, Tags: []string{"a", "b"}}))

	var got snapshot
	require.NoError(t, LoadJSON(path, &got))
	assert.Equal(t, 7, got.Level)
	assert.Equal(t, []string{"a", "b"}, got.Tags)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestLoadJSONErrors(t *testing.T) {
	dir := t.TempDir()

	var got snapshot
	err := LoadJSON(filepath.Join(dir, "missing.json"), &got)
	assert.ErrorContains(t, err, "failed to read file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0600))
	err = LoadJSON(bad, &got)
	assert.ErrorContains(t, err, "failed to unmarshal JSON")
}

func TestSaveJSONUnmarshalable(t *testing.T) {
	err := SaveJSON(filepath.Join(t.TempDir(), "x.json"), map[string]interface{}{"ch": make(chan int)})
	assert.ErrorContains(t, err, "failed to marshal data")
}
