package query

import (
	"strings"

	"github.com/salesdesk/sales-management-be/internal/models"
)

// Op identifies how a Condition compares a column against its value.
type Op int

const (
	// OpSearch is a case-insensitive substring match over customer_name
	// OR phone_number. The condition's column is ignored.
	OpSearch Op = iota
	// OpIn is set membership over a list of strings.
	OpIn
	// OpGTE and OpLTE are inclusive bounds.
	OpGTE
	OpLTE
	// OpTagsOverlap matches records whose tag list shares at least one
	// element with the given list.
	OpTagsOverlap
)

// Condition is one backend-independent filter clause. Conditions are
// AND-combined; each store compiles them into its native query form.
type Condition struct {
	Column string
	Op     Op
	Value  interface{}
}

// Plan carries everything a store needs to execute a filtered, sorted,
// paginated read.
type Plan struct {
	Conds      []Condition
	SortColumn string
	SortDesc   bool
	Page       int
	PageSize   int
}

func (p Plan) Limit() int {
	return p.PageSize
}

func (p Plan) Offset() int {
	return (p.Page - 1) * p.PageSize
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// sortColumns is the allow-list of sortable fields. Both the API's
// camelCase names and the column names themselves are accepted; anything
// else silently falls back to id ascending so stale clients never break
// the listing.
var sortColumns = map[string]string{
	"id":               "id",
	"transactionId":    "transaction_id",
	"transaction_id":   "transaction_id",
	"date":             "date",
	"customerName":     "customer_name",
	"customer_name":    "customer_name",
	"customerRegion":   "customer_region",
	"customer_region":  "customer_region",
	"productCategory":  "product_category",
	"product_category": "product_category",
	"quantity":         "quantity",
	"finalAmount":      "final_amount",
	"final_amount":     "final_amount",
	"paymentMethod":    "payment_method",
	"payment_method":   "payment_method",
}

// Build translates flat filter criteria into a Plan. It is a pure
// function: absent fields produce no condition, malformed optional fields
// are ignored rather than rejected, and pagination is clamped to sane
// bounds.
func Build(criteria models.FilterCriteria) Plan {
	var conds []Condition

	if q := strings.TrimSpace(criteria.Q); q != "" {
		conds = append(conds, Condition{Op: OpSearch, Value: q})
	}

	for _, clause := range []struct {
		column string
		raw    string
	}{
		{"customer_region", criteria.Regions},
		{"gender", criteria.Genders},
		{"product_category", criteria.Categories},
		{"payment_method", criteria.PaymentMethods},
	} {
		if values := splitList(clause.raw); len(values) > 0 {
			conds = append(conds, Condition{Column: clause.column, Op: OpIn, Value: values})
		}
	}

	if tags := splitList(criteria.Tags); len(tags) > 0 {
		conds = append(conds, Condition{Column: "tags", Op: OpTagsOverlap, Value: tags})
	}

	if criteria.AgeMin != nil {
		conds = append(conds, Condition{Column: "age", Op: OpGTE, Value: *criteria.AgeMin})
	}
	if criteria.AgeMax != nil {
		conds = append(conds, Condition{Column: "age", Op: OpLTE, Value: *criteria.AgeMax})
	}

	if d, err := models.ParseDate(criteria.DateFrom); criteria.DateFrom != "" && err == nil {
		conds = append(conds, Condition{Column: "date", Op: OpGTE, Value: d})
	}
	if d, err := models.ParseDate(criteria.DateTo); criteria.DateTo != "" && err == nil {
		conds = append(conds, Condition{Column: "date", Op: OpLTE, Value: d})
	}

	plan := Plan{
		Conds:      conds,
		SortColumn: "id",
		SortDesc:   false,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	}

	if column, ok := sortColumns[criteria.SortBy]; ok {
		plan.SortColumn = column
		plan.SortDesc = strings.EqualFold(criteria.SortDir, "desc")
	}

	if plan.Page < 1 {
		plan.Page = 1
	}
	if plan.PageSize < 1 {
		plan.PageSize = DefaultPageSize
	}
	if plan.PageSize > MaxPageSize {
		plan.PageSize = MaxPageSize
	}

	return plan
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
