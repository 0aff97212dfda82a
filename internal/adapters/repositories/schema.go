package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"route-consolidation-service/internal/domain"
)

// Initialize the database schema. The DDL is portable across SQLite and
// Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		area TEXT NOT NULL,
		driver_id TEXT NOT NULL,
		driver_name TEXT NOT NULL,
		status TEXT NOT NULL,
		delivery_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		estimated_end_time TEXT NOT NULL,
		stops TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		seq INTEGER NOT NULL,
		record_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		driver_name TEXT NOT NULL,
		delivery_date TEXT NOT NULL,
		status TEXT NOT NULL,
		stops TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_deliveries_delivery_date
	ON deliveries(delivery_date);
	`

	statements := []string{
		createRoutesQuery,
		createDeliveriesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the deliveries table from a JSON seed file of delivery
// records. Stop shape is normalized at load time so the table always
// holds the flat form.
func SeedFromJSON(db *sql.DB, driver, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed deliveries: read %q: %w", jsonPath, err)
	}

	var records []domain.DeliveryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("seed deliveries: parse json: %w", err)
	}

	for i, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			return fmt.Errorf("seed deliveries: empty record id at index %d", i+1)
		}
		if rec.DayKey() == "" {
			return fmt.Errorf("seed deliveries: record_id=%s has invalid delivery_date %q", rec.ID, rec.DeliveryDate)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed deliveries: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM deliveries;`); err != nil {
		return fmt.Errorf("seed deliveries: clear table: %w", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO deliveries (
		seq,
		record_id,
		name,
		driver_name,
		delivery_date,
		status,
		stops
	)
	VALUES (%s);
	`, binds(driver, 7))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed deliveries: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		stopsJSON, err := json.Marshal(rec.NormalizeStops())
		if err != nil {
			return fmt.Errorf("seed deliveries: marshal stops for record_id=%s: %w", rec.ID, err)
		}

		if _, err := stmt.Exec(i, rec.ID, rec.Name, rec.DriverName, rec.DayKey(), rec.Status, string(stopsJSON)); err != nil {
			return fmt.Errorf("seed deliveries: insert record_id=%s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed deliveries: commit tx: %w", err)
	}

	return nil
}
