package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/query"
)

func intPtr(n int) *int             { return &n }
func floatPtr(f float64) *float64   { return &f }
func datePtr(s string) *models.Date { d, _ := models.ParseDate(s); return &d }

func seedStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	records := []models.SaleRecord{
		{TransactionID: "TXN-1", CustomerName: "Alice Smith", PhoneNumber: "555-0001", Gender: "Female", Age: intPtr(30), CustomerRegion: "North", ProductCategory: "Electronics", PaymentMethod: "Card", Tags: []string{"electronics", "audio"}, Quantity: intPtr(2), TotalAmount: floatPtr(100), FinalAmount: floatPtr(90), Date: datePtr("2024-01-10")},
		{TransactionID: "TXN-2", CustomerName: "Bob Jones", PhoneNumber: "555-0002", Gender: "Male", Age: intPtr(45), CustomerRegion: "South", ProductCategory: "Clothing", PaymentMethod: "Cash", Tags: []string{"fashion"}, Quantity: intPtr(1), TotalAmount: floatPtr(200), FinalAmount: floatPtr(180), Date: datePtr("2024-02-15")},
		{TransactionID: "TXN-3", CustomerName: "Carol White", PhoneNumber: "555-0003", Gender: "Female", Age: intPtr(18), CustomerRegion: "North", ProductCategory: "Electronics", PaymentMethod: "UPI", Tags: []string{"wireless"}, Quantity: intPtr(3), Date: datePtr("2024-03-20")},
		{TransactionID: "TXN-4", CustomerName: "Dan Brown", PhoneNumber: "555-0004", Gender: "Male", CustomerRegion: "East", ProductCategory: "Grocery", PaymentMethod: "Card", Date: datePtr("2024-04-25")},
	}
	n, err := store.InsertMany(records)
	require.NoError(t, err)
	require.Equal(t, len(records), n)
	return store
}

func TestMemoryStoreAssignsMonotonicIDs(t *testing.T) {
	store := seedStore(t)

	items, err := store.Query(query.Build(models.FilterCriteria{}))
	require.NoError(t, err)
	require.Len(t, items, 4)
	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID)
		assert.False(t, item.CreatedAt.IsZero())
	}
}

func TestMemoryStoreNoFiltersReturnsEverything(t *testing.T) {
	store := seedStore(t)
	plan := query.Build(models.FilterCriteria{})

	total, err := store.Count(plan.Conds)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	items, err := store.Query(plan)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "TXN-1", items[0].TransactionID)
}

func TestMemoryStoreRegionMembership(t *testing.T) {
	store := seedStore(t)
	plan := query.Build(models.FilterCriteria{Regions: "North,East"})

	items, err := store.Query(plan)
	require.NoError(t, err)
	for _, item := range items {
		assert.Contains(t, []string{"North", "East"}, item.CustomerRegion)
	}

	// Total counts the whole filtered set, not just the page.
	total, err := store.Count(plan.Conds)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestMemoryStoreAgeBoundsInclusive(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{AgeMin: intPtr(18), AgeMax: intPtr(30)})
	items, err := store.Query(plan)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "TXN-1", items[0].TransactionID) // age 30 == ageMax
	assert.Equal(t, "TXN-3", items[1].TransactionID) // age 18 == ageMin
}

func TestMemoryStoreNullAgeNeverMatchesBounds(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{AgeMin: intPtr(0)})
	total, err := store.Count(plan.Conds)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total) // TXN-4 has NULL age
}

func TestMemoryStoreTagsOverlap(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{Tags: "electronics,audio"})
	items, err := store.Query(plan)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "TXN-1", items[0].TransactionID)
}

func TestMemoryStoreDateBounds(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{DateFrom: "2024-02-15", DateTo: "2024-03-20"})
	items, err := store.Query(plan)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "TXN-2", items[0].TransactionID)
	assert.Equal(t, "TXN-3", items[1].TransactionID)
}

func TestMemoryStoreSearchIsCaseInsensitive(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{Q: "SMITH"})
	items, err := store.Query(plan)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Alice Smith", items[0].CustomerName)

	// phone number matches too
	plan = query.Build(models.FilterCriteria{Q: "555-0002"})
	items, err = store.Query(plan)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bob Jones", items[0].CustomerName)
}

func TestMemoryStoreSorting(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{SortBy: "customerName", SortDir: "desc"})
	items, err := store.Query(plan)
	require.NoError(t, err)

	require.Len(t, items, 4)
	assert.Equal(t, "Dan Brown", items[0].CustomerName)
	assert.Equal(t, "Alice Smith", items[3].CustomerName)
}

func TestMemoryStoreUnknownSortFallsBackToID(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{SortBy: "foo"})
	items, err := store.Query(plan)
	require.NoError(t, err)

	require.Len(t, items, 4)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(4), items[3].ID)
}

func TestMemoryStorePagination(t *testing.T) {
	store := seedStore(t)

	plan := query.Build(models.FilterCriteria{Page: 2, PageSize: 3})
	items, err := store.Query(plan)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].ID)

	// Offset past the end yields an empty page, not an error.
	plan = query.Build(models.FilterCriteria{Page: 9, PageSize: 10})
	items, err = store.Query(plan)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStoreFindByID(t *testing.T) {
	store := seedStore(t)

	sale, err := store.FindByID(3)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "TXN-3", sale.TransactionID)

	missing, err := store.FindByID(99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStoreDistinctValues(t *testing.T) {
	store := seedStore(t)

	regions, err := store.DistinctValues("customer_region")
	require.NoError(t, err)
	assert.Equal(t, []string{"East", "North", "South"}, regions)

	_, err = store.DistinctValues("customer_name")
	assert.Error(t, err)
}

func TestMemoryStoreAggregate(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.InsertMany([]models.SaleRecord{
		{TransactionID: "TXN-1", CustomerName: "A", Quantity: intPtr(2), TotalAmount: floatPtr(100), FinalAmount: floatPtr(90)},
		{TransactionID: "TXN-2", CustomerName: "B", Quantity: intPtr(1), TotalAmount: floatPtr(200), FinalAmount: floatPtr(180)},
	})
	require.NoError(t, err)

	summary, err := store.Aggregate()
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalUnits)
	assert.InDelta(t, 270, summary.TotalAmount, 0.001)
	assert.Equal(t, int64(2), summary.TotalTransactions)
	assert.InDelta(t, 30, summary.TotalDiscount, 0.001)
}

func TestMemoryStoreAggregateSkipsNulls(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.InsertMany([]models.SaleRecord{
		{TransactionID: "TXN-1", CustomerName: "A", TotalAmount: floatPtr(100)},
		{TransactionID: "TXN-2", CustomerName: "B", FinalAmount: floatPtr(50)},
	})
	require.NoError(t, err)

	summary, err := store.Aggregate()
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalUnits)
	assert.InDelta(t, 50, summary.TotalAmount, 0.001)
	assert.Equal(t, int64(2), summary.TotalTransactions)
	// Neither row has both amounts, so no discount accrues.
	assert.InDelta(t, 0, summary.TotalDiscount, 0.001)
}
