package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStopsPrefersFlatShape(t *testing.T) {
	rec := DeliveryRecord{
		Stops:   []DeliveryStop{{ID: "flat"}},
		Details: &RecordDetails{Stops: []DeliveryStop{{ID: "nested"}}},
	}

	stops := rec.NormalizeStops()
	require.Len(t, stops, 1)
	assert.Equal(t, "flat", stops[0].ID)
}

func TestNormalizeStopsFallsBackToNested(t *testing.T) {
	rec := DeliveryRecord{
		Details: &RecordDetails{Stops: []DeliveryStop{{ID: "nested"}}},
	}

	stops := rec.NormalizeStops()
	require.Len(t, stops, 1)
	assert.Equal(t, "nested", stops[0].ID)
}

func TestNormalizeStopsEmptyForStoplessRecord(t *testing.T) {
	assert.Empty(t, DeliveryRecord{}.NormalizeStops())
	assert.Empty(t, DeliveryRecord{Details: &RecordDetails{}}.NormalizeStops())
	assert.Equal(t, 0, DeliveryRecord{}.StopCount())
}

func TestRecordDayKey(t *testing.T) {
	assert.Equal(t, "2025-05-26", DeliveryRecord{DeliveryDate: "2025-05-26"}.DayKey())
	assert.Equal(t, "2025-05-26", DeliveryRecord{DeliveryDate: "2025-05-26T14:00:00Z"}.DayKey())
	assert.Equal(t, "", DeliveryRecord{DeliveryDate: "tomorrow"}.DayKey())
	assert.Equal(t, "", DeliveryRecord{DeliveryDate: "26-05-2025"}.DayKey())
	assert.Equal(t, "", DeliveryRecord{}.DayKey())
}

func TestRecordDecodesBothHistoricalShapes(t *testing.T) {
	flat := []byte(`{"id":"a","delivery_date":"2025-05-26","stops":[{"id":"s1","address":"X","status":"pending"}]}`)
	nested := []byte(`{"id":"b","delivery_date":"2025-05-26","details":{"stops":[{"id":"s2","address":"Y","status":"completed"}]}}`)

	var recFlat, recNested DeliveryRecord
	require.NoError(t, json.Unmarshal(flat, &recFlat))
	require.NoError(t, json.Unmarshal(nested, &recNested))

	require.Len(t, recFlat.NormalizeStops(), 1)
	assert.Equal(t, "s1", recFlat.NormalizeStops()[0].ID)

	require.Len(t, recNested.NormalizeStops(), 1)
	assert.Equal(t, StopCompleted, recNested.NormalizeStops()[0].Status)
}
