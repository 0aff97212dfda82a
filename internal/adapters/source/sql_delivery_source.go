package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"route-consolidation-service/internal/domain"
)

// SQL-backed implementation of the DeliverySource port, reading seeded
// delivery records. Intended for local and demo runs where no upstream
// order system is reachable.
type SQLDeliverySource struct {
	DB     *sql.DB
	Driver string
}

func NewSQLDeliverySource(db *sql.DB, driver string) *SQLDeliverySource {
	return &SQLDeliverySource{DB: db, Driver: driver}
}

// FetchWindow returns records whose delivery date falls inside the
// window, in seed order. The delivery_date column always holds a
// zero-padded YYYY-MM-DD key, so string range comparison is exact.
func (s *SQLDeliverySource) FetchWindow(ctx context.Context, window domain.WeekWindow) ([]domain.DeliveryRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sql delivery source: DB is nil")
	}

	lo := window.Start.Format("2006-01-02")
	hi := window.End.Format("2006-01-02")

	query := `
	SELECT
		record_id,
		name,
		driver_name,
		delivery_date,
		status,
		stops
	FROM deliveries
	WHERE delivery_date >= ` + bindVar(s.Driver, 1) + `
		AND delivery_date <= ` + bindVar(s.Driver, 2) + `
	ORDER BY seq;
	`

	rows, err := s.DB.QueryContext(ctx, query, lo, hi)
	if err != nil {
		return nil, &domain.FetchError{Cause: fmt.Errorf("query deliveries table: %w", err)}
	}
	defer rows.Close()

	records := make([]domain.DeliveryRecord, 0, 32)
	for rows.Next() {
		var (
			rec       domain.DeliveryRecord
			stopsJSON string
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.DriverName, &rec.DeliveryDate, &rec.Status, &stopsJSON); err != nil {
			return nil, &domain.FetchError{Cause: fmt.Errorf("scan delivery row: %w", err)}
		}

		// Malformed stop payloads degrade to an empty list; a review
		// screen prefers partial data over total failure.
		if err := json.Unmarshal([]byte(stopsJSON), &rec.Stops); err != nil {
			rec.Stops = nil
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.FetchError{Cause: fmt.Errorf("delivery row iteration: %w", err)}
	}

	return records, nil
}

// bindVar renders the i-th placeholder in the dialect of the driver.
func bindVar(driver string, i int) string {
	if driver == "pgx" {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}
