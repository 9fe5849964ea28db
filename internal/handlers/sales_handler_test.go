package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/sales-management-be/internal/apperrors"
	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/repositories"
	"github.com/salesdesk/sales-management-be/internal/services"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func setupApp(t *testing.T) (*fiber.App, *repositories.MemoryStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	return appWithStore(t, store), store
}

func appWithStore(t *testing.T, store repositories.RecordStore) *fiber.App {
	t.Helper()

	service := services.NewSalesService(store)
	handler := NewSalesHandler(service)

	app := fiber.New()
	app.Get("/api/sales", handler.GetSales)
	app.Post("/api/sales", handler.CreateSale)
	app.Get("/api/sales/summary", handler.GetSummary)
	app.Get("/api/sales/filters", handler.GetFilterOptions)
	app.Get("/api/sales/:id", handler.GetSale)
	return app
}

// brokenStore simulates a store whose writes fail at the backend.
type brokenStore struct {
	*repositories.MemoryStore
}

func (s *brokenStore) InsertOne(*models.SaleRecord) error {
	return &apperrors.WriteError{Err: errors.New("connection reset")}
}

func seedSales(t *testing.T, store *repositories.MemoryStore) {
	t.Helper()
	_, err := store.InsertMany([]models.SaleRecord{
		{TransactionID: "TXN-1", CustomerName: "Alice Smith", PhoneNumber: "555-0001", Age: intPtr(30), CustomerRegion: "North", ProductCategory: "Electronics", PaymentMethod: "Card", Quantity: intPtr(2), TotalAmount: floatPtr(100), FinalAmount: floatPtr(90)},
		{TransactionID: "TXN-2", CustomerName: "Bob Jones", PhoneNumber: "555-0002", Age: intPtr(45), CustomerRegion: "South", ProductCategory: "Clothing", PaymentMethod: "Cash", Quantity: intPtr(1), TotalAmount: floatPtr(200), FinalAmount: floatPtr(180)},
		{TransactionID: "TXN-3", CustomerName: "Carol White", PhoneNumber: "555-0003", Age: intPtr(22), CustomerRegion: "North", ProductCategory: "Electronics", PaymentMethod: "UPI", Quantity: intPtr(3)},
	})
	require.NoError(t, err)
}

func decodeBody(t *testing.T, body io.Reader, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(out))
}

func TestGetSalesReturnsEnvelope(t *testing.T) {
	app, store := setupApp(t)
	seedSales(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Total    int64                    `json:"total"`
		Page     int                      `json:"page"`
		PageSize int                      `json:"pageSize"`
		Items    []map[string]interface{} `json:"items"`
	}
	decodeBody(t, resp.Body, &envelope)

	assert.Equal(t, int64(3), envelope.Total)
	assert.Equal(t, 1, envelope.Page)
	assert.Equal(t, 10, envelope.PageSize)
	require.Len(t, envelope.Items, 3)
	assert.Equal(t, "TXN-1", envelope.Items[0]["transaction_id"])
}

func TestGetSalesAppliesFilters(t *testing.T) {
	app, store := setupApp(t)
	seedSales(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales?regions=North&categories=Electronics&ageMax=25", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Total int64                    `json:"total"`
		Items []map[string]interface{} `json:"items"`
	}
	decodeBody(t, resp.Body, &envelope)

	assert.Equal(t, int64(1), envelope.Total)
	require.Len(t, envelope.Items, 1)
	assert.Equal(t, "Carol White", envelope.Items[0]["customer_name"])
}

func TestGetSalesPaginationAndSorting(t *testing.T) {
	app, store := setupApp(t)
	seedSales(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales?sortBy=customerName&sortDir=desc&page=1&pageSize=2", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Total    int64                    `json:"total"`
		PageSize int                      `json:"pageSize"`
		Items    []map[string]interface{} `json:"items"`
	}
	decodeBody(t, resp.Body, &envelope)

	// Total still counts the whole filtered set.
	assert.Equal(t, int64(3), envelope.Total)
	assert.Equal(t, 2, envelope.PageSize)
	require.Len(t, envelope.Items, 2)
	assert.Equal(t, "Carol White", envelope.Items[0]["customer_name"])
	assert.Equal(t, "Bob Jones", envelope.Items[1]["customer_name"])
}

func TestGetSalesEmptyResultIsEmptyList(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// items must serialize as [], never null
	assert.Contains(t, string(raw), `"items":[]`)
}

func TestGetSummary(t *testing.T) {
	app, store := setupApp(t)
	seedSales(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales/summary", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary models.SalesSummary
	decodeBody(t, resp.Body, &summary)

	assert.Equal(t, int64(6), summary.TotalUnits)
	assert.InDelta(t, 270, summary.TotalAmount, 0.001)
	assert.Equal(t, int64(3), summary.TotalTransactions)
	assert.InDelta(t, 30, summary.TotalDiscount, 0.001)
}

func TestGetFilterOptions(t *testing.T) {
	app, store := setupApp(t)
	seedSales(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales/filters", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var options models.FilterOptions
	decodeBody(t, resp.Body, &options)

	assert.Equal(t, []string{"North", "South"}, options.Regions)
	assert.Equal(t, []string{"Clothing", "Electronics"}, options.Categories)
	assert.Equal(t, []string{"Card", "Cash", "UPI"}, options.PaymentMethods)
}

func TestCreateSale(t *testing.T) {
	app, store := setupApp(t)

	body := `{"customer_name":"Jane Doe","product_category":"Electronics","quantity":2,"total_amount":100,"final_amount":90}`
	req := httptest.NewRequest("POST", "/api/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	decodeBody(t, resp.Body, &created)

	assert.Equal(t, "Jane Doe", created["customer_name"])
	assert.Equal(t, "New", created["customer_type"])
	assert.Equal(t, "Completed", created["order_status"])
	assert.NotEmpty(t, created["transaction_id"])

	// The record is actually persisted.
	summary, err := store.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalTransactions)
}

func TestCreateSaleStoreFailureIsServerError(t *testing.T) {
	store := &brokenStore{MemoryStore: repositories.NewMemoryStore()}
	app := appWithStore(t, store)

	req := httptest.NewRequest("POST", "/api/sales", strings.NewReader(`{"customer_name":"Jane Doe"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestGetSaleByID(t *testing.T) {
	app, store := setupApp(t)
	seedSales(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales/2", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sale map[string]interface{}
	decodeBody(t, resp.Body, &sale)
	assert.Equal(t, "TXN-2", sale["transaction_id"])
	assert.Equal(t, "Bob Jones", sale["customer_name"])
}

func TestGetSaleByIDNotFound(t *testing.T) {
	app, store := setupApp(t)
	seedSales(t, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales/999", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetSaleByIDRejectsBadID(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales/-1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateSaleRejectsMissingName(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("POST", "/api/sales", strings.NewReader(`{"product_category":"Electronics"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateSaleRejectsMalformedBody(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("POST", "/api/sales", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
