package source

import (
	"context"

	"route-consolidation-service/internal/domain"
)

// In-memory DeliverySource for tests.
type MockDeliverySource struct {
	Records []domain.DeliveryRecord
	Err     error
}

func NewMockDeliverySource(records []domain.DeliveryRecord) *MockDeliverySource {
	return &MockDeliverySource{Records: records}
}

func (m *MockDeliverySource) FetchWindow(ctx context.Context, window domain.WeekWindow) ([]domain.DeliveryRecord, error) {
	return m.Records, m.Err
}
