package services

import (
	"strings"

	"route-consolidation-service/internal/domain"
)

// DefaultPageSize for day review listings; override through configuration.
const DefaultPageSize = 20

// ReviewItem is one stop decorated with its parent record's identity for
// display and search.
type ReviewItem struct {
	Stop       domain.DeliveryStop `json:"stop"`
	RouteID    string              `json:"route_id"`
	RouteName  string              `json:"route_name"`
	DriverName string              `json:"driver_name"`
}

// CollectDayItems flattens one day's records into decorated stop items,
// preserving record and stop order.
func CollectDayItems(records []domain.DeliveryRecord) []ReviewItem {
	items := make([]ReviewItem, 0, len(records))
	for _, r := range records {
		for _, s := range r.NormalizeStops() {
			items = append(items, ReviewItem{
				Stop:       s,
				RouteID:    r.ID,
				RouteName:  r.Name,
				DriverName: r.DriverName,
			})
		}
	}
	return items
}

// FilterPending keeps only pending stops when pendingOnly is set;
// otherwise it is the identity.
func FilterPending(items []ReviewItem, pendingOnly bool) []ReviewItem {
	if !pendingOnly {
		return items
	}
	out := make([]ReviewItem, 0, len(items))
	for _, it := range items {
		if it.Stop.Status == domain.StopPending {
			out = append(out, it)
		}
	}
	return out
}

// Search keeps items whose address, route name, or driver name contains
// the query, case-insensitively. Any of the three fields may match. An
// empty query is the identity.
func Search(items []ReviewItem, query string) []ReviewItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]ReviewItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Stop.Address), q) ||
			strings.Contains(strings.ToLower(it.RouteName), q) ||
			strings.Contains(strings.ToLower(it.DriverName), q) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate slices items for a 1-indexed page. An out-of-range page
// returns an empty slice rather than erroring.
func Paginate(items []ReviewItem, page, pageSize int) []ReviewItem {
	if page < 1 || pageSize < 1 {
		return []ReviewItem{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []ReviewItem{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ReviewSession holds one day's aggregated items plus the operator's
// filter and paging controls. Filters compose in a fixed order: pending
// filter, then search, then pagination. Changing either filter resets
// the page to 1 so stale pagination never survives a filter change.
type ReviewSession struct {
	items       []ReviewItem
	pendingOnly bool
	query       string
	page        int
	pageSize    int
}

func NewReviewSession(items []ReviewItem, pageSize int) *ReviewSession {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &ReviewSession{items: items, page: 1, pageSize: pageSize}
}

// SetPendingOnly toggles the pending-only filter, resetting pagination
// when the value actually changes.
func (s *ReviewSession) SetPendingOnly(v bool) {
	if s.pendingOnly != v {
		s.pendingOnly = v
		s.page = 1
	}
}

// SetQuery updates the search query, resetting pagination when the
// query actually changes.
func (s *ReviewSession) SetQuery(q string) {
	if s.query != q {
		s.query = q
		s.page = 1
	}
}

func (s *ReviewSession) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

func (s *ReviewSession) CurrentPage() int { return s.page }

// Filtered returns the items after pending filter and search but before
// pagination. This is the consolidation input: the operator sends the
// whole reviewed set, not one page of it.
func (s *ReviewSession) Filtered() []ReviewItem {
	return Search(FilterPending(s.items, s.pendingOnly), s.query)
}

// Page returns the current page of the filtered items.
func (s *ReviewSession) Page() []ReviewItem {
	return Paginate(s.Filtered(), s.page, s.pageSize)
}
