package repositories

import (
	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/query"
)

// RecordStore is the storage contract for sale records. Two
// implementations exist: SQLStore (GORM over Postgres or SQLite) and
// MemoryStore. The store performs no semantic validation beyond what the
// compiled conditions encode.
type RecordStore interface {
	// InsertOne writes a single record, assigning its id.
	InsertOne(record *models.SaleRecord) error

	// FindByID returns the record with the given id, or nil when no such
	// record exists.
	FindByID(id int64) (*models.SaleRecord, error)

	// InsertMany writes all given records as one atomic unit and returns
	// the number written. On failure no rows from the call are retained.
	InsertMany(records []models.SaleRecord) (int, error)

	// Query returns the rows matching the plan's conditions, ordered by
	// its sort key with id ascending as tiebreak, with limit/offset
	// applied after ordering.
	Query(plan query.Plan) ([]models.SaleRecord, error)

	// Count returns the number of rows matching the conditions,
	// independent of pagination.
	Count(conds []query.Condition) (int64, error)

	// DistinctValues returns the non-null, non-empty distinct values of
	// an allow-listed column, ascending.
	DistinctValues(field string) ([]string, error)

	// Aggregate computes whole-table summary figures.
	Aggregate() (*models.SalesSummary, error)
}
