// Package store provides SQLite-based run history storage.
package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"cellarworks/internal/pipeline"
)

// DB wraps a SQLite connection for run history persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		label TEXT NOT NULL,
		days INTEGER NOT NULL,
		casks_effective INTEGER NOT NULL,
		full_cask_batch_met INTEGER NOT NULL,
		all_fruit_processed INTEGER NOT NULL,
		total_profit INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_crops (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		crop_id TEXT NOT NULL,
		fruit_harvested INTEGER NOT NULL,
		fruit_unprocessed INTEGER NOT NULL,
		wine_produced INTEGER NOT NULL,
		wine_sold INTEGER NOT NULL,
		aged_wine_produced INTEGER NOT NULL,
		preserves_produced INTEGER NOT NULL,
		dried_batches_produced INTEGER NOT NULL,
		seeds_used INTEGER NOT NULL,
		fertilizer_used INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_run_crops_run ON run_crops(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RunRow is one stored run summary.
type RunRow struct {
	ID                int64  `db:"id"`
	CreatedAt         string `db:"created_at"`
	Label             string `db:"label"`
	Days              int    `db:"days"`
	CasksEffective    int    `db:"casks_effective"`
	FullCaskBatchMet  bool   `db:"full_cask_batch_met"`
	AllFruitProcessed bool   `db:"all_fruit_processed"`
	TotalProfit       int    `db:"total_profit"`
}

// CropRow is one crop's stored totals for a run.
type CropRow struct {
	RunID                int64  `db:"run_id"`
	CropID               string `db:"crop_id"`
	FruitHarvested       int    `db:"fruit_harvested"`
	FruitUnprocessed     int    `db:"fruit_unprocessed"`
	WineProduced         int    `db:"wine_produced"`
	WineSold             int    `db:"wine_sold"`
	AgedWineProduced     int    `db:"aged_wine_produced"`
	PreservesProduced    int    `db:"preserves_produced"`
	DriedBatchesProduced int    `db:"dried_batches_produced"`
	SeedsUsed            int    `db:"seeds_used"`
	FertilizerUsed       int    `db:"fertilizer_used"`
}

// SaveRun writes a run summary with its per-crop rows and returns the run ID.
func (db *DB) SaveRun(label string, res pipeline.Result, totalProfit int) (int64, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	out, err := tx.Exec(`INSERT INTO runs
		(created_at, label, days, casks_effective, full_cask_batch_met,
		 all_fruit_processed, total_profit)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), label, res.Days,
		res.CasksEffective, boolToInt(res.FullCaskBatchMet),
		boolToInt(res.AllFruitProcessed), totalProfit,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := out.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Preparex(`INSERT INTO run_crops
		(run_id, crop_id, fruit_harvested, fruit_unprocessed, wine_produced,
		 wine_sold, aged_wine_produced, preserves_produced,
		 dried_batches_produced, seeds_used, fertilizer_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, c := range res.Crops {
		_, err := stmt.Exec(
			runID, c.CropID, c.FruitHarvested, c.FruitUnprocessed,
			c.WineProduced, c.WineSold, c.AgedWineProduced,
			c.PreservesProduced, c.DriedBatchesProduced,
			c.SeedsUsed, c.FertilizerUsed,
		)
		if err != nil {
			return 0, fmt.Errorf("insert run crop %s: %w", c.CropID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	slog.Info("run saved", "id", runID, "label", label, "crops", len(res.Crops))
	return runID, nil
}

// RecentRuns returns the most recent N run summaries.
func (db *DB) RecentRuns(limit int) ([]RunRow, error) {
	var runs []RunRow
	err := db.conn.Select(&runs,
		"SELECT * FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	return runs, err
}

// RunCrops returns the per-crop rows for one run.
func (db *DB) RunCrops(runID int64) ([]CropRow, error) {
	var crops []CropRow
	err := db.conn.Select(&crops,
		`SELECT run_id, crop_id, fruit_harvested, fruit_unprocessed,
		 wine_produced, wine_sold, aged_wine_produced, preserves_produced,
		 dried_batches_produced, seeds_used, fertilizer_used
		 FROM run_crops WHERE run_id = ? ORDER BY id`,
		runID,
	)
	return crops, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
