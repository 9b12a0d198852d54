package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellarworks/internal/pipeline"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleResult() pipeline.Result {
	return pipeline.Result{
		Days:             112,
		CasksEffective:   2,
		FullCaskBatchMet: false,
		Crops: []pipeline.CropResult{
			{
				CropID:           "sunfruit",
				FruitHarvested:   14,
				WineProduced:     13,
				WineSold:         11,
				AgedWineProduced: 2,
				SeedsUsed:        15,
				FertilizerUsed:   15,
			},
			{
				CropID:            "mistfruit",
				FruitHarvested:    13,
				FruitUnprocessed:  4,
				PreservesProduced: 9,
				SeedsUsed:         1,
			},
		},
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	db := openTestDB(t)

	runID, err := db.SaveRun("baseline", sampleResult(), 12345)
	require.NoError(t, err)
	require.Greater(t, runID, int64(0))

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, "baseline", runs[0].Label)
	assert.Equal(t, 112, runs[0].Days)
	assert.Equal(t, 2, runs[0].CasksEffective)
	assert.False(t, runs[0].FullCaskBatchMet)
	assert.Equal(t, 12345, runs[0].TotalProfit)
	assert.NotEmpty(t, runs[0].CreatedAt)

	crops, err := db.RunCrops(runID)
	require.NoError(t, err)
	require.Len(t, crops, 2)

	assert.Equal(t, "sunfruit", crops[0].CropID)
	assert.Equal(t, 14, crops[0].FruitHarvested)
	assert.Equal(t, 2, crops[0].AgedWineProduced)
	assert.Equal(t, "mistfruit", crops[1].CropID)
	assert.Equal(t, 9, crops[1].PreservesProduced)
	assert.Equal(t, 4, crops[1].FruitUnprocessed)
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	db := openTestDB(t)

	first, err := db.SaveRun("first", sampleResult(), 1)
	require.NoError(t, err)
	second, err := db.SaveRun("second", sampleResult(), 2)
	require.NoError(t, err)
	third, err := db.SaveRun("third", sampleResult(), 3)
	require.NoError(t, err)

	runs, err := db.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, third, runs[0].ID)
	assert.Equal(t, second, runs[1].ID)
	assert.NotEqual(t, first, runs[1].ID)
}

func TestRunCropsUnknownRun(t *testing.T) {
	db := openTestDB(t)

	crops, err := db.RunCrops(999)
	require.NoError(t, err)
	assert.Empty(t, crops)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.SaveRun("keep", sampleResult(), 7)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening migrates against the existing schema and keeps the data.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
