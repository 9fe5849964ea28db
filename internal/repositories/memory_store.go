package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/salesdesk/sales-management-be/internal/apperrors"
	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/query"
)

// MemoryStore is an in-memory RecordStore. It keeps its state
// encapsulated behind a mutex and is safe for concurrent use. Data is
// lost on restart; it exists for local development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.SaleRecord
	nextID  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) InsertOne(record *models.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	record.ID = s.nextID
	s.nextID++
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.Tags == nil {
		record.Tags = []string{}
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *MemoryStore) FindByID(id int64) (*models.SaleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			record := s.records[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) InsertMany(records []models.SaleRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for i := range records {
		records[i].ID = s.nextID
		s.nextID++
		records[i].CreatedAt = now
		records[i].UpdatedAt = now
		if records[i].Tags == nil {
			records[i].Tags = []string{}
		}
		s.records = append(s.records, records[i])
	}
	return len(records), nil
}

func (s *MemoryStore) Query(plan query.Plan) ([]models.SaleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, err := s.match(plan.Conds)
	if err != nil {
		return nil, &apperrors.ReadError{Err: err}
	}

	sortRecords(matched, plan.SortColumn, plan.SortDesc)

	offset := plan.Offset()
	if offset >= len(matched) {
		return []models.SaleRecord{}, nil
	}
	end := offset + plan.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	page := make([]models.SaleRecord, end-offset)
	copy(page, matched[offset:end])
	return page, nil
}

func (s *MemoryStore) Count(conds []query.Condition) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, err := s.match(conds)
	if err != nil {
		return 0, &apperrors.ReadError{Err: err}
	}
	return int64(len(matched)), nil
}

func (s *MemoryStore) DistinctValues(field string) ([]string, error) {
	if _, ok := distinctColumns[field]; !ok {
		return nil, &apperrors.ReadError{Err: fmt.Errorf("unsupported distinct field: %s", field)}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for i := range s.records {
		if v := stringField(&s.records[i], field); v != "" {
			seen[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

func (s *MemoryStore) Aggregate() (*models.SalesSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &models.SalesSummary{TotalTransactions: int64(len(s.records))}
	for i := range s.records {
		r := &s.records[i]
		if r.Quantity != nil {
			summary.TotalUnits += int64(*r.Quantity)
		}
		if r.FinalAmount != nil {
			summary.TotalAmount += *r.FinalAmount
		}
		// SUM skips NULL operands, so the discount term only counts rows
		// where both amounts are present.
		if r.TotalAmount != nil && r.FinalAmount != nil {
			summary.TotalDiscount += *r.TotalAmount - *r.FinalAmount
		}
	}
	return summary, nil
}

func (s *MemoryStore) match(conds []query.Condition) ([]models.SaleRecord, error) {
	var matched []models.SaleRecord
	for i := range s.records {
		ok, err := matches(&s.records[i], conds)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, s.records[i])
		}
	}
	return matched, nil
}

func matches(r *models.SaleRecord, conds []query.Condition) (bool, error) {
	for _, cond := range conds {
		switch cond.Op {
		case query.OpSearch:
			needle := strings.ToLower(fmt.Sprintf("%v", cond.Value))
			if !strings.Contains(strings.ToLower(r.CustomerName), needle) &&
				!strings.Contains(strings.ToLower(r.PhoneNumber), needle) {
				return false, nil
			}
		case query.OpIn:
			values, _ := cond.Value.([]string)
			if !containsString(values, stringField(r, cond.Column)) {
				return false, nil
			}
		case query.OpGTE, query.OpLTE:
			ok, err := compareBound(r, cond)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		case query.OpTagsOverlap:
			values, _ := cond.Value.([]string)
			if !tagsOverlap(r.Tags, values) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unsupported condition op: %d", cond.Op)
		}
	}
	return true, nil
}

// compareBound applies an inclusive bound on age or date. Records with a
// NULL value never match a bound, mirroring SQL comparison semantics.
func compareBound(r *models.SaleRecord, cond query.Condition) (bool, error) {
	switch cond.Column {
	case "age":
		bound, _ := cond.Value.(int)
		if r.Age == nil {
			return false, nil
		}
		if cond.Op == query.OpGTE {
			return *r.Age >= bound, nil
		}
		return *r.Age <= bound, nil
	case "date":
		bound, ok := cond.Value.(models.Date)
		if !ok || r.Date == nil {
			return false, nil
		}
		if cond.Op == query.OpGTE {
			return !r.Date.Before(bound.Time), nil
		}
		return !r.Date.After(bound.Time), nil
	default:
		return false, fmt.Errorf("unsupported bound column: %s", cond.Column)
	}
}

func stringField(r *models.SaleRecord, column string) string {
	switch column {
	case "customer_region":
		return r.CustomerRegion
	case "gender":
		return r.Gender
	case "product_category":
		return r.ProductCategory
	case "payment_method":
		return r.PaymentMethod
	case "transaction_id":
		return r.TransactionID
	case "customer_name":
		return r.CustomerName
	default:
		return ""
	}
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func tagsOverlap(tags []string, wanted []string) bool {
	for _, tag := range tags {
		if containsString(wanted, tag) {
			return true
		}
	}
	return false
}

func sortRecords(records []models.SaleRecord, column string, desc bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		less, equal := compareField(a, b, column)
		if equal {
			return a.ID < b.ID
		}
		if desc {
			return !less
		}
		return less
	})
}

// compareField orders two records by one column; NULL sorts first. The
// second return reports a tie, which falls back to id ascending.
func compareField(a, b *models.SaleRecord, column string) (less, equal bool) {
	switch column {
	case "id":
		return a.ID < b.ID, a.ID == b.ID
	case "date":
		if a.Date == nil || b.Date == nil {
			return b.Date != nil, a.Date == nil && b.Date == nil
		}
		return a.Date.Before(b.Date.Time), a.Date.Equal(b.Date.Time)
	case "quantity":
		return compareIntPtr(a.Quantity, b.Quantity)
	case "final_amount":
		return compareFloatPtr(a.FinalAmount, b.FinalAmount)
	default:
		av, bv := stringField(a, column), stringField(b, column)
		return av < bv, av == bv
	}
}

func compareIntPtr(a, b *int) (less, equal bool) {
	if a == nil || b == nil {
		return b != nil, a == nil && b == nil
	}
	return *a < *b, *a == *b
}

func compareFloatPtr(a, b *float64) (less, equal bool) {
	if a == nil || b == nil {
		return b != nil, a == nil && b == nil
	}
	return *a < *b, *a == *b
}
