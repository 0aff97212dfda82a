package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"route-consolidation-service/internal/domain"
)

// SQL-backed implementation of the RouteRepository port. Runs against
// SQLite for single-node deployments and Postgres (pgx stdlib driver)
// for shared ones; only placeholder syntax differs between the two.
type SQLRouteRepository struct {
	DB     *sql.DB
	Driver string
}

func NewSQLRouteRepository(db *sql.DB, driver string) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db, Driver: driver}
}

// binds renders n placeholders in the dialect of the configured driver.
func binds(driver string, n int) string {
	ph := make([]string, n)
	for i := range ph {
		if driver == "pgx" {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

// CreateRoute persists a draft and returns the stored route with its
// assigned id. The stop snapshot is stored as a JSON column; routes are
// small by construction (bounded by the batch cap).
func (r *SQLRouteRepository) CreateRoute(ctx context.Context, draft domain.RouteDraft) (domain.Route, error) {
	if r.DB == nil {
		return domain.Route{}, errors.New("route repository: DB is nil")
	}

	if err := draft.Validate(); err != nil {
		return domain.Route{}, fmt.Errorf("create route: %w", err)
	}

	stopsJSON, err := json.Marshal(draft.Stops)
	if err != nil {
		return domain.Route{}, fmt.Errorf("create route: marshal stops: %w", err)
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	query := fmt.Sprintf(`
	INSERT INTO routes (
		route_id,
		name,
		area,
		driver_id,
		driver_name,
		status,
		delivery_date,
		start_time,
		estimated_end_time,
		stops,
		created_at
	)
	VALUES (%s);
	`, binds(r.Driver, 11))

	_, err = r.DB.ExecContext(ctx, query,
		id,
		draft.Name,
		draft.Area,
		draft.DriverID,
		draft.DriverName,
		string(draft.Status),
		draft.DeliveryDate,
		draft.StartTime.Format(time.RFC3339),
		draft.EstimatedEndTime.Format(time.RFC3339),
		string(stopsJSON),
		createdAt,
	)
	if err != nil {
		return domain.Route{}, fmt.Errorf("create route: insert route_id=%s: %w", id, err)
	}

	return domain.Route{
		ID:               id,
		Name:             draft.Name,
		Area:             draft.Area,
		DriverID:         draft.DriverID,
		DriverName:       draft.DriverName,
		Status:           draft.Status,
		DeliveryDate:     draft.DeliveryDate,
		StartTime:        draft.StartTime,
		EstimatedEndTime: draft.EstimatedEndTime,
		Stops:            draft.Stops,
	}, nil
}

// ListRoutes returns all persisted routes, oldest first.
func (r *SQLRouteRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	if r.DB == nil {
		return nil, errors.New("route repository: DB is nil")
	}

	query := `
	SELECT
		route_id,
		name,
		area,
		driver_id,
		driver_name,
		status,
		delivery_date,
		start_time,
		estimated_end_time,
		stops
	FROM routes
	ORDER BY created_at, route_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 16)
	for rows.Next() {
		var (
			rt               domain.Route
			status           string
			startRaw, endRaw string
			stopsJSON        string
		)
		if err := rows.Scan(
			&rt.ID, &rt.Name, &rt.Area, &rt.DriverID, &rt.DriverName,
			&status, &rt.DeliveryDate, &startRaw, &endRaw, &stopsJSON,
		); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}

		rt.Status = domain.RouteStatus(status)
		if rt.StartTime, err = time.Parse(time.RFC3339, startRaw); err != nil {
			return nil, fmt.Errorf("list routes: parse start_time for route_id=%s: %w", rt.ID, err)
		}
		if rt.EstimatedEndTime, err = time.Parse(time.RFC3339, endRaw); err != nil {
			return nil, fmt.Errorf("list routes: parse estimated_end_time for route_id=%s: %w", rt.ID, err)
		}
		if err := json.Unmarshal([]byte(stopsJSON), &rt.Stops); err != nil {
			return nil, fmt.Errorf("list routes: unmarshal stops for route_id=%s: %w", rt.ID, err)
		}

		routes = append(routes, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}
