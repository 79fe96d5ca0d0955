package core

import (
	"bytes"
	"descstats/stats"
	"descstats/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	db, err := New(TestStoreConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBasicDB(t *testing.T) {
	dbPath := t.TempDir()
	{
		db, err := Open(dbPath)
		require.NoError(t, err)
		err = db.PutSample("latency", []float64{5, 1, 4, 2, 3})
		assert.NoError(t, err)
		summary, err := db.Summary("latency")
		assert.NoError(t, err)
		assert.Equal(t, 3.0, summary.Median)
		err = db.Close()
		assert.NoError(t, err)
	}
	{
		db, err := Open(dbPath)
		require.NoError(t, err)
		defer db.Close()

		names, err := db.Names()
		assert.NoError(t, err)
		assert.Equal(t, []string{"latency"}, names)

		buf, err := db.backend.Get(storage.SummaryKind, "latency")
		require.NoError(t, err)
		stored, err := storage.DecodeSummary(buf)
		require.NoError(t, err)
		assert.Equal(t, stats.Summarize([]float64{1, 2, 3, 4, 5}), stored)

		summary, err := db.Summary("latency")
		assert.NoError(t, err)
		assert.Equal(t, stored, summary)
	}
}

func TestDB_PutSampleReplacesSummary(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.PutSample("x", []float64{1, 2, 3}))
	summary, err := db.Summary("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, summary.Mean)

	require.NoError(t, db.PutSample("x", []float64{10, 20, 30, 40}))
	summary, err = db.Summary("x")
	require.NoError(t, err)
	assert.Equal(t, 25.0, summary.Mean)
	assert.Equal(t, 40.0, summary.Max)
}

func TestDB_GetSample(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetSample("missing")
	assert.ErrorIs(t, err, ErrSampleNotFound)

	require.NoError(t, db.PutSample("x", []float64{3, 1, 2}))
	sample, err := db.GetSample("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, sample)

	assert.ErrorIs(t, db.PutSample("", []float64{1}), ErrInvalidName)
}

func TestDB_DeleteSample(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.PutSample("a", []float64{1}))
	require.NoError(t, db.PutSample("b", []float64{2}))
	_, err := db.Summary("a")
	require.NoError(t, err)

	require.NoError(t, db.DeleteSample("a"))
	names, err := db.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)

	_, err = db.Summary("a")
	assert.ErrorIs(t, err, ErrSampleNotFound)
}

func TestDB_Describe(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.PutSample("x", []float64{1, 2, 3, 4, 5}))

	var buf bytes.Buffer
	require.NoError(t, db.Describe("x", &buf))
	assert.Equal(t, stats.Summarize([]float64{1, 2, 3, 4, 5}).String(), buf.String())
}

func TestDB_InMemoryBackend(t *testing.T) {
	db, err := NewWithBackend(storage.NewInMemoryBackend(), TestStoreConfig())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PutSample("x", []float64{2, 4}))
	report, err := db.Report("x")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, 3.0, report.Summary.Mean)
}
