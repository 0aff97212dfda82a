package services

import "route-consolidation-service/internal/domain"

// DefaultBatchCap bounds the number of stops considered in one
// aggregation cycle. An operational safety valve, not a business rule:
// it keeps day views and generated routes reviewable no matter how many
// orders exist upstream. Override through configuration.
const DefaultBatchCap = 12

// CapRecords truncates the total stop count across records to max,
// preserving record order. When the cutoff falls inside a record, that
// record is kept as a shallow copy with its stop list sliced rather than
// dropped whole. The input is never mutated; the result is deterministic
// and idempotent for a given input and max.
func CapRecords(records []domain.DeliveryRecord, max int) []domain.DeliveryRecord {
	out := make([]domain.DeliveryRecord, 0, len(records))
	if max <= 0 {
		return out
	}

	consumed := 0
	for _, r := range records {
		remaining := max - consumed
		if remaining <= 0 {
			break
		}

		stops := r.NormalizeStops()
		if len(stops) <= remaining {
			out = append(out, r)
			consumed += len(stops)
			continue
		}

		// Truncated copies are re-homed on the flat shape so downstream
		// consumers see a single resolved stop list.
		truncated := r
		truncated.Stops = append([]domain.DeliveryStop(nil), stops[:remaining]...)
		truncated.Details = nil
		out = append(out, truncated)
		break
	}

	return out
}
