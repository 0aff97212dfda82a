package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"route-consolidation-service/internal/domain"
)

// HTTP client for the external order/subscription system. Fetches the
// delivery-bearing records for a week window from a REST endpoint.
type HTTPDeliverySource struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPDeliverySource(baseURL string, timeout time.Duration, log *zap.Logger) *HTTPDeliverySource {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPDeliverySource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type deliveriesResponse struct {
	Deliveries []json.RawMessage `json:"deliveries"`
}

// FetchWindow requests GET {base}/deliveries?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Records are decoded individually: a malformed record keeps its identity
// with an empty stop list when possible, and is skipped otherwise, so one
// bad record never aborts the whole window.
func (s *HTTPDeliverySource) FetchWindow(ctx context.Context, window domain.WeekWindow) ([]domain.DeliveryRecord, error) {
	q := url.Values{}
	q.Set("from", window.Start.Format("2006-01-02"))
	q.Set("to", window.End.Format("2006-01-02"))

	endpoint := s.baseURL + "/deliveries?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.FetchError{Cause: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Cause: fmt.Errorf("call order source: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.FetchError{
			Cause: fmt.Errorf("order source returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var payload deliveriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.FetchError{Cause: fmt.Errorf("decode order source response: %w", err)}
	}

	records := make([]domain.DeliveryRecord, 0, len(payload.Deliveries))
	for i, raw := range payload.Deliveries {
		var rec domain.DeliveryRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// Salvage the record identity if the stop payload is what broke;
			// otherwise drop the record and keep the window.
			var header struct {
				ID           string `json:"id"`
				DeliveryDate string `json:"delivery_date"`
			}
			if herr := json.Unmarshal(raw, &header); herr != nil || header.ID == "" {
				s.log.Warn("dropping undecodable delivery record",
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}

			rec = domain.DeliveryRecord{ID: header.ID, DeliveryDate: header.DeliveryDate}
			s.log.Warn("delivery record decoded without stops",
				zap.String("record_id", header.ID),
				zap.Error(err),
			)
		}
		records = append(records, rec)
	}

	return records, nil
}
