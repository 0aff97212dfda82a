package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-consolidation-service/internal/domain"
)

func reviewFixture() []ReviewItem {
	records := []domain.DeliveryRecord{
		{
			ID:         "rec-1",
			Name:       "Condado Morning",
			DriverName: "M. Rivera",
			Stops: []domain.DeliveryStop{
				{ID: "s1", Address: "Calle Loíza 1204", Status: domain.StopPending},
				{ID: "s2", Address: "Av. Ashford 998", Status: domain.StopCompleted},
			},
		},
		{
			ID:         "rec-2",
			Name:       "Old San Juan Loop",
			DriverName: "J. Santos",
			Details: &domain.RecordDetails{Stops: []domain.DeliveryStop{
				{ID: "s3", Address: "Calle Fortaleza 152", Status: domain.StopPending},
			}},
		},
	}
	return CollectDayItems(records)
}

func TestCollectDayItemsDecoratesAndPreservesOrder(t *testing.T) {
	items := reviewFixture()

	require.Len(t, items, 3)
	assert.Equal(t, "s1", items[0].Stop.ID)
	assert.Equal(t, "rec-1", items[0].RouteID)
	assert.Equal(t, "Condado Morning", items[0].RouteName)
	assert.Equal(t, "J. Santos", items[2].DriverName)
}

func TestFilterPendingKeepsOrder(t *testing.T) {
	items := []ReviewItem{
		{Stop: domain.DeliveryStop{ID: "a", Status: domain.StopPending}},
		{Stop: domain.DeliveryStop{ID: "b", Status: domain.StopCompleted}},
		{Stop: domain.DeliveryStop{ID: "c", Status: domain.StopPending}},
	}

	got := FilterPending(items, true)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Stop.ID)
	assert.Equal(t, "c", got[1].Stop.ID)

	assert.Equal(t, items, FilterPending(items, false), "pendingOnly=false is the identity")
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	items := reviewFixture()

	byAddress := Search(items, "loíza")
	require.Len(t, byAddress, 1)
	assert.Equal(t, "s1", byAddress[0].Stop.ID)

	byRouteName := Search(items, "old san juan")
	require.Len(t, byRouteName, 1)
	assert.Equal(t, "s3", byRouteName[0].Stop.ID)

	byDriver := Search(items, "RIVERA")
	assert.Len(t, byDriver, 2)

	assert.Equal(t, items, Search(items, ""), "empty query is the identity")
	assert.Empty(t, Search(items, "zzz"))
}

func TestPaginate(t *testing.T) {
	items := reviewFixture()

	page1 := Paginate(items, 1, 2)
	require.Len(t, page1, 2)
	assert.Equal(t, "s1", page1[0].Stop.ID)

	page2 := Paginate(items, 2, 2)
	require.Len(t, page2, 1)
	assert.Equal(t, "s3", page2[0].Stop.ID)

	assert.Empty(t, Paginate(items, 3, 2), "out-of-range page yields an empty slice")
	assert.Empty(t, Paginate(items, 0, 2), "page numbers are 1-indexed")
}

func TestReviewSessionResetsPageOnFilterChange(t *testing.T) {
	session := NewReviewSession(reviewFixture(), 1)

	session.SetPage(3)
	require.Equal(t, 3, session.CurrentPage())

	session.SetPendingOnly(true)
	assert.Equal(t, 1, session.CurrentPage(), "toggling pending filter must reset pagination")

	session.SetPage(2)
	session.SetQuery("loíza")
	assert.Equal(t, 1, session.CurrentPage(), "changing the query must reset pagination")

	// Re-setting the same values leaves the page alone.
	session.SetPage(2)
	session.SetPendingOnly(true)
	session.SetQuery("loíza")
	assert.Equal(t, 2, session.CurrentPage())
}

func TestReviewSessionComposesFiltersInOrder(t *testing.T) {
	session := NewReviewSession(reviewFixture(), 10)
	session.SetPendingOnly(true)
	session.SetQuery("calle")

	filtered := session.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "s1", filtered[0].Stop.ID)
	assert.Equal(t, "s3", filtered[1].Stop.ID)

	page := session.Page()
	assert.Equal(t, filtered, page, "single page holds the whole filtered set")
}
