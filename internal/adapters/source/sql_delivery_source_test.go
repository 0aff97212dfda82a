package source

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"route-consolidation-service/internal/adapters/repositories"
	"route-consolidation-service/internal/domain"
)

const seedJSON = `[
  {
    "id": "rec-1",
    "name": "Condado Morning",
    "driver_name": "M. Rivera",
    "delivery_date": "2025-05-26",
    "status": "active",
    "stops": [
      {"id": "s1", "address": "Calle Loíza 1204", "status": "pending"},
      {"id": "s2", "address": "Av. Ashford 998", "status": "completed"}
    ]
  },
  {
    "id": "rec-2",
    "name": "Old San Juan Loop",
    "driver_name": "J. Santos",
    "delivery_date": "2025-05-28",
    "status": "active",
    "details": {
      "stops": [
        {"id": "s3", "address": "Calle Fortaleza 152", "status": "pending"}
      ]
    }
  },
  {
    "id": "rec-3",
    "name": "Next Week",
    "driver_name": "J. Santos",
    "delivery_date": "2025-06-03",
    "status": "active",
    "stops": [
      {"id": "s4", "address": "Av. Universidad 12", "status": "pending"}
    ]
  }
]`

func seededDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repositories.InitSchema(db))

	seedPath := filepath.Join(t.TempDir(), "deliveries.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedJSON), 0o644))
	require.NoError(t, repositories.SeedFromJSON(db, "sqlite", seedPath))

	return db
}

func TestSQLDeliverySourceFetchWindow(t *testing.T) {
	src := NewSQLDeliverySource(seededDB(t), "sqlite")

	records, err := src.FetchWindow(context.Background(), weekOf("2025-05-26"))
	require.NoError(t, err)

	require.Len(t, records, 2, "next week's record must be excluded")
	assert.Equal(t, "rec-1", records[0].ID)
	assert.Equal(t, "rec-2", records[1].ID)

	// Seeding normalizes the nested shape into the flat one.
	require.Len(t, records[1].Stops, 1)
	assert.Equal(t, "s3", records[1].Stops[0].ID)
	assert.Equal(t, domain.StopPending, records[1].Stops[0].Status)
}

func TestSQLDeliverySourceEmptyWindow(t *testing.T) {
	src := NewSQLDeliverySource(seededDB(t), "sqlite")

	records, err := src.FetchWindow(context.Background(), weekOf("2025-07-07"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
