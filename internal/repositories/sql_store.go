package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/salesdesk/sales-management-be/internal/apperrors"
	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/query"
)

// distinctColumns allow-lists the fields exposed through DistinctValues.
var distinctColumns = map[string]string{
	"customer_region":  "customer_region",
	"product_category": "product_category",
	"payment_method":   "payment_method",
}

// SQLStore is the GORM-backed RecordStore. It compiles the abstract
// filter conditions into parameterized clauses, so no request value is
// ever interpolated into SQL text.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) InsertOne(record *models.SaleRecord) error {
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if err := s.db.Create(record).Error; err != nil {
		return &apperrors.WriteError{Err: err}
	}
	return nil
}

func (s *SQLStore) FindByID(id int64) (*models.SaleRecord, error) {
	var record models.SaleRecord
	err := s.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.ReadError{Err: err}
	}
	return &record, nil
}

func (s *SQLStore) InsertMany(records []models.SaleRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	for i := range records {
		if records[i].Tags == nil {
			records[i].Tags = []string{}
		}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return 0, &apperrors.WriteError{Err: err}
	}
	return len(records), nil
}

func (s *SQLStore) Query(plan query.Plan) ([]models.SaleRecord, error) {
	db, err := s.applyConditions(plan.Conds)
	if err != nil {
		return nil, &apperrors.ReadError{Err: err}
	}

	order := plan.SortColumn
	if plan.SortDesc {
		order += " DESC"
	} else {
		order += " ASC"
	}
	db = db.Order(order)
	if plan.SortColumn != "id" {
		// Stable ties regardless of the backend's natural ordering.
		db = db.Order("id ASC")
	}

	var records []models.SaleRecord
	if err := db.Offset(plan.Offset()).Limit(plan.Limit()).Find(&records).Error; err != nil {
		return nil, &apperrors.ReadError{Err: err}
	}
	return records, nil
}

func (s *SQLStore) Count(conds []query.Condition) (int64, error) {
	db, err := s.applyConditions(conds)
	if err != nil {
		return 0, &apperrors.ReadError{Err: err}
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, &apperrors.ReadError{Err: err}
	}
	return total, nil
}

func (s *SQLStore) DistinctValues(field string) ([]string, error) {
	column, ok := distinctColumns[field]
	if !ok {
		return nil, &apperrors.ReadError{Err: fmt.Errorf("unsupported distinct field: %s", field)}
	}

	var values []string
	err := s.db.Model(&models.SaleRecord{}).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Distinct().
		Order(column+" ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, &apperrors.ReadError{Err: err}
	}
	return values, nil
}

func (s *SQLStore) Aggregate() (*models.SalesSummary, error) {
	var row struct {
		TotalUnits        int64
		TotalAmount       float64
		TotalTransactions int64
		TotalDiscount     float64
	}
	err := s.db.Model(&models.SaleRecord{}).
		Select(`COALESCE(SUM(quantity), 0) AS total_units,
			COALESCE(SUM(final_amount), 0) AS total_amount,
			COUNT(*) AS total_transactions,
			COALESCE(SUM(total_amount - final_amount), 0) AS total_discount`).
		Scan(&row).Error
	if err != nil {
		return nil, &apperrors.ReadError{Err: err}
	}
	return &models.SalesSummary{
		TotalUnits:        row.TotalUnits,
		TotalAmount:       row.TotalAmount,
		TotalTransactions: row.TotalTransactions,
		TotalDiscount:     row.TotalDiscount,
	}, nil
}

// applyConditions compiles the abstract conditions onto a fresh query.
// Columns come from the builder's allow-lists, never from raw input.
func (s *SQLStore) applyConditions(conds []query.Condition) (*gorm.DB, error) {
	db := s.db.Model(&models.SaleRecord{})
	for _, cond := range conds {
		switch cond.Op {
		case query.OpSearch:
			pattern := "%" + strings.ToLower(fmt.Sprintf("%v", cond.Value)) + "%"
			db = db.Where("(LOWER(customer_name) LIKE ? OR LOWER(phone_number) LIKE ?)", pattern, pattern)
		case query.OpIn:
			db = db.Where(cond.Column+" IN ?", cond.Value)
		case query.OpGTE:
			db = db.Where(cond.Column+" >= ?", cond.Value)
		case query.OpLTE:
			db = db.Where(cond.Column+" <= ?", cond.Value)
		case query.OpTagsOverlap:
			db = db.Where(s.tagsOverlapClause(), cond.Value)
		default:
			return nil, fmt.Errorf("unsupported condition op: %d", cond.Op)
		}
	}
	return db, nil
}

// tagsOverlapClause returns the dialect-specific predicate for "the
// record's JSON tag list intersects the given list".
func (s *SQLStore) tagsOverlapClause() string {
	if s.db.Dialector.Name() == "postgres" {
		return "EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags::jsonb) AS tag(value) WHERE tag.value IN ?)"
	}
	return "EXISTS (SELECT 1 FROM json_each(sales.tags) WHERE json_each.value IN ?)"
}
