package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"route-consolidation-service/internal/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func draftFixture() domain.RouteDraft {
	day := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)
	return domain.RouteDraft{
		Name:             "Auto Route 26-05-2025",
		Area:             "General",
		DriverID:         domain.UnassignedDriver,
		DriverName:       domain.UnassignedDriver,
		Status:           domain.RouteScheduled,
		DeliveryDate:     "2025-05-26",
		StartTime:        day.Add(9 * time.Hour),
		EstimatedEndTime: day.Add(14 * time.Hour),
		Stops: []domain.DeliveryStop{
			{ID: "s1", Address: "Calle Loíza 1204", Status: domain.StopPending},
			{ID: "s2", Address: "Av. Ashford 998", Status: domain.StopCompleted},
		},
	}
}

func TestCreateAndListRoutes(t *testing.T) {
	repo := NewSQLRouteRepository(testDB(t), "sqlite")
	ctx := context.Background()

	created, err := repo.CreateRoute(ctx, draftFixture())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.RouteScheduled, created.Status)

	listed, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Auto Route 26-05-2025", got.Name)
	assert.Equal(t, "2025-05-26", got.DeliveryDate)
	require.Len(t, got.Stops, 2)
	assert.Equal(t, "Calle Loíza 1204", got.Stops[0].Address)
	assert.Equal(t, domain.StopCompleted, got.Stops[1].Status)
	assert.True(t, got.StartTime.Equal(draftFixture().StartTime))
}

func TestCreateRouteAssignsDistinctIDs(t *testing.T) {
	repo := NewSQLRouteRepository(testDB(t), "sqlite")
	ctx := context.Background()

	first, err := repo.CreateRoute(ctx, draftFixture())
	require.NoError(t, err)
	second, err := repo.CreateRoute(ctx, draftFixture())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	listed, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestCreateRouteRejectsInvalidDraft(t *testing.T) {
	repo := NewSQLRouteRepository(testDB(t), "sqlite")

	_, err := repo.CreateRoute(context.Background(), domain.RouteDraft{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestBindsDialects(t *testing.T) {
	assert.Equal(t, "?, ?, ?", binds("sqlite", 3))
	assert.Equal(t, "$1, $2, $3", binds("pgx", 3))
}
