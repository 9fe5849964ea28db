package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salesdesk/sales-management-be/internal/apperrors"
	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/repositories"
	"github.com/salesdesk/sales-management-be/internal/retry"
	"github.com/salesdesk/sales-management-be/internal/utils"
)

const (
	DefaultBatchSize   = 50
	DefaultMaxAttempts = 3
)

type Options struct {
	// BatchSize bounds how many parsed rows accumulate before a flush.
	BatchSize int
	// MaxAttempts bounds the write retries per batch.
	MaxAttempts int
	// Backoff is the wait between failed attempts. Defaults to linear
	// attempt × 1s.
	Backoff retry.BackoffFunc
}

// Importer streams a delimited sales file into a RecordStore in bounded
// batches. Malformed field values never abort the import (they coerce to
// null); only a batch write that exhausts its retry budget does, and rows
// from batches flushed before it stay committed.
type Importer struct {
	store repositories.RecordStore
	opts  Options
}

func New(store repositories.RecordStore, opts Options) *Importer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Backoff == nil {
		opts.Backoff = retry.Linear(time.Second)
	}
	return &Importer{store: store, opts: opts}
}

// ImportFile imports the CSV at path. It returns the number of rows
// committed, which on an aborted import counts only fully flushed batches.
func (imp *Importer) ImportFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()
	return imp.ImportReader(f)
}

func (imp *Importer) ImportReader(r io.Reader) (int, error) {
	runID := uuid.New().String()
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// columns[i] holds the canonical field key for position i, or "" for
	// columns the importer does not know about.
	columns := make([]string, len(header))
	for i, cell := range header {
		columns[i] = canonicalColumn(cell)
	}

	utils.LogInfo("starting CSV import", map[string]interface{}{"run_id": runID, "columns": len(header)})

	total := 0
	batch := make([]models.SaleRecord, 0, imp.opts.BatchSize)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Report how far the import got, same as a failed batch write.
			return total, &apperrors.ImportAborted{Committed: total, Err: fmt.Errorf("failed to read CSV row: %w", err)}
		}

		fields := mapRow(columns, row)
		// Guard against a header row re-embedded in the data.
		if fields["transaction_id"] == "Transaction ID" {
			continue
		}

		batch = append(batch, buildRecord(fields))
		if len(batch) >= imp.opts.BatchSize {
			if err := imp.flush(batch); err != nil {
				return total, &apperrors.ImportAborted{Committed: total, Err: err}
			}
			total += len(batch)
			utils.LogInfo("imported rows", map[string]interface{}{"run_id": runID, "rows": total})
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := imp.flush(batch); err != nil {
			return total, &apperrors.ImportAborted{Committed: total, Err: err}
		}
		total += len(batch)
		utils.LogInfo("imported rows", map[string]interface{}{"run_id": runID, "rows": total})
	}

	utils.LogInfo("CSV import finished", map[string]interface{}{"run_id": runID, "rows": total})
	return total, nil
}

func (imp *Importer) flush(batch []models.SaleRecord) error {
	rows := make([]models.SaleRecord, len(batch))
	copy(rows, batch)
	return retry.Do(imp.opts.MaxAttempts, imp.opts.Backoff, func() error {
		_, err := imp.store.InsertMany(rows)
		if err != nil {
			utils.LogWarn("batch insert failed, will retry", map[string]interface{}{
				"batch_size": len(rows),
				"error":      err.Error(),
			})
		}
		return err
	})
}

func mapRow(columns []string, row []string) map[string]string {
	fields := make(map[string]string, len(columns))
	for i, key := range columns {
		if key == "" || i >= len(row) {
			continue
		}
		fields[key] = strings.TrimSpace(row[i])
	}
	return fields
}

func buildRecord(fields map[string]string) models.SaleRecord {
	record := models.SaleRecord{
		TransactionID:      fields["transaction_id"],
		CustomerID:         fields["customer_id"],
		CustomerName:       fields["customer_name"],
		PhoneNumber:        fields["phone_number"],
		Gender:             fields["gender"],
		Age:                parseIntField(fields["age"]),
		CustomerRegion:     fields["customer_region"],
		CustomerType:       fields["customer_type"],
		ProductID:          fields["product_id"],
		ProductName:        fields["product_name"],
		Brand:              fields["brand"],
		ProductCategory:    fields["product_category"],
		Subcategory:        fields["subcategory"],
		Tags:               ParseTags(fields["tags"]),
		Quantity:           parseIntField(fields["quantity"]),
		PricePerUnit:       parseFloatField(fields["price_per_unit"]),
		DiscountPercentage: parseFloatField(fields["discount_percentage"]),
		TotalAmount:        parseFloatField(fields["total_amount"]),
		FinalAmount:        parseFloatField(fields["final_amount"]),
		PaymentMethod:      fields["payment_method"],
		OrderStatus:        fields["order_status"],
		DeliveryType:       fields["delivery_type"],
		StoreID:            fields["store_id"],
		StoreLocation:      fields["store_location"],
		SalespersonID:      fields["salesperson_id"],
		EmployeeName:       fields["employee_name"],
	}

	if d, err := models.ParseDate(fields["date"]); err == nil {
		record.Date = &d
	}

	return record
}

// ParseTags turns a free-text tags cell into an ordered list. A single
// pair of wrapping quotes is stripped, pieces are split on commas and
// trimmed, empties are dropped. Order and duplicates are preserved.
func ParseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		raw = raw[1 : len(raw)-1]
	}
	tags := []string{}
	for _, piece := range strings.Split(raw, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			tags = append(tags, piece)
		}
	}
	return tags
}

func parseIntField(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatField(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

// stripBOM drops a leading UTF-8 byte-order mark so the first header cell
// resolves correctly.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
