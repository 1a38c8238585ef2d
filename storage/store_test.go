package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progress.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestStoreRoundtrip(t *testing.T) {
	store, _ := openTestStore(t)

	require.NoError(t, store.Save("key", payload{Name: "noah", Count: 40}))

	var got payload
	require.True(t, store.Load("key", &got))
	assert.Equal(t, payload{Name: "noah", Count: 40}, got)
}

func TestStoreMissingKey(t *testing.T) {
	store, _ := openTestStore(t)

	var got payload
	assert.False(t, store.Load("never-saved", &got))
	assert.Equal(t, payload{}, got)
}

func TestStoreCorruptValueReadsAsAbsent(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.db.Exec(`INSERT INTO progress (key, value) VALUES (?, ?)`, "broken", "{not json")
	require.NoError(t, err)

	var got payload
	assert.False(t, store.Load("broken", &got))
}

func TestStoreOverwrite(t *testing.T) {
	store, _ := openTestStore(t)

	require.NoError(t, store.Save("key", payload{Count: 1}))
	require.NoError(t, store.Save("key", payload{Count: 2}))

	var got payload
	require.True(t, store.Load("key", &got))
	assert.Equal(t, 2, got.Count)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("key", payload{Name: "persisted"}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	var got payload
	require.True(t, reopened.Load("key", &got))
	assert.Equal(t, "persisted", got.Name)
}

func TestMemoryStore(t *testing.T) {
	mem := NewMemory()

	var got payload
	assert.False(t, mem.Load("key", &got))

	require.NoError(t, mem.Save("key", payload{Count: 3}))
	require.True(t, mem.Load("key", &got))
	assert.Equal(t, 3, got.Count)
}
