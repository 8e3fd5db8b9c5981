package storage

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	store := NewFileStorage(t.TempDir())

	w, err := store.Writer("proof_fixture_plonk.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(`{"system":"Plonk"}`))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := store.Reader("proof_fixture_plonk.json")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, `{"system":"Plonk"}`, string(data))
}

func TestFileStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "fixtures")
	store := NewFileStorage(dir)

	w, err := store.Writer("key")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.DirExists(t, dir)
}

func TestFileStorageMissingKey(t *testing.T) {
	store := NewFileStorage(t.TempDir())
	_, err := store.Reader("absent")
	require.Error(t, err)
}
