package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s := NewStorage(filepath.Join(t.TempDir(), "history.db"), nil)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStorage_DefaultPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Cannot get home directory: %v", err)
	}

	s := NewStorage("", nil)
	assert.Equal(t, filepath.Join(home, ".toolbox-search", "history.db"), s.Path())
	assert.True(t, s.Enabled())
}

func TestInit_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")
	s := NewStorage(dbPath, nil)

	require.NoError(t, s.Init())
	defer s.Close()

	_, err := os.Stat(dbPath)
	assert.NoError(t, err, "database file not created")
	assert.True(t, s.Enabled())
}

func TestInit_MigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	first := NewStorage(dbPath, nil)
	require.NoError(t, first.Init())
	require.NoError(t, first.RecordSearch(SearchRecord{SearchID: "a", QueryHash: HashQuery("x"), Timestamp: time.Now()}))
	require.NoError(t, first.Close())

	second := NewStorage(dbPath, nil)
	require.NoError(t, second.Init())
	defer second.Close()

	records, err := second.ListSearches(0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordAndListSearches(t *testing.T) {
	s := newTestStorage(t)
	now := time.Now().UTC().Truncate(time.Second)

	older := SearchRecord{
		SearchID:       "older",
		QueryHash:      HashQuery("image"),
		Timestamp:      now.Add(-time.Minute),
		ResultsCount:   2,
		SearchTimeMs:   0.25,
		FiltersApplied: []string{"category"},
		TopMatches:     []string{"image-cropper", "image-filters"},
	}
	newer := SearchRecord{
		SearchID:     "newer",
		QueryHash:    HashQuery("emi"),
		Timestamp:    now,
		ResultsCount: 1,
		TopMatches:   []string{"emi-calculator"},
	}

	require.NoError(t, s.RecordSearch(older))
	require.NoError(t, s.RecordSearch(newer))

	records, err := s.ListSearches(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "newer", records[0].SearchID)
	assert.Equal(t, []string{}, records[0].FiltersApplied)
	assert.Equal(t, []string{"emi-calculator"}, records[0].TopMatches)

	assert.Equal(t, older.QueryHash, records[1].QueryHash)
	assert.True(t, older.Timestamp.Equal(records[1].Timestamp))
	assert.Equal(t, 2, records[1].ResultsCount)
	assert.Equal(t, 0.25, records[1].SearchTimeMs)
	assert.Equal(t, []string{"category"}, records[1].FiltersApplied)
	assert.Equal(t, older.TopMatches, records[1].TopMatches)

	limited, err := s.ListSearches(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "newer", limited[0].SearchID)
}

func TestRecordSearch_DuplicateIDIsLoggedNotReturned(t *testing.T) {
	s := newTestStorage(t)
	rec := SearchRecord{SearchID: "dup", QueryHash: HashQuery("q"), Timestamp: time.Now()}

	require.NoError(t, s.RecordSearch(rec))
	assert.NoError(t, s.RecordSearch(rec))

	records, err := s.ListSearches(0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCleanup(t *testing.T) {
	s := newTestStorage(t)
	now := time.Now()

	require.NoError(t, s.RecordSearch(SearchRecord{SearchID: "old", QueryHash: "h", Timestamp: now.Add(-48 * time.Hour)}))
	require.NoError(t, s.RecordSearch(SearchRecord{SearchID: "fresh", QueryHash: "h", Timestamp: now}))

	removed, err := s.Cleanup(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	records, err := s.ListSearches(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].SearchID)
}

func TestHashQuery(t *testing.T) {
	hash1 := HashQuery("test query for hashing")
	hash2 := HashQuery("test query for hashing")

	assert.Equal(t, hash1, hash2)
	assert.Len(t, hash1, 64) // SHA256 hex
	assert.NotEqual(t, hash1, HashQuery("another query"))
}

func TestGracefulDegradation(t *testing.T) {
	// A regular file where a directory is expected makes MkdirAll fail, even as root.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	s := NewStorage(filepath.Join(blocker, "sub", "history.db"), nil)
	assert.Error(t, s.Init())
	assert.False(t, s.Enabled())

	assert.NoError(t, s.RecordSearch(SearchRecord{SearchID: "x", Timestamp: time.Now()}))

	records, err := s.ListSearches(10)
	assert.NoError(t, err)
	assert.Empty(t, records)

	removed, err := s.Cleanup(time.Hour)
	assert.NoError(t, err)
	assert.Zero(t, removed)

	assert.NoError(t, s.Close())
}
