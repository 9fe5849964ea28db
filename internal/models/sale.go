package models

import (
	"time"

	"gorm.io/datatypes"
)

// SaleRecord represents one sales transaction line.
type SaleRecord struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID string `gorm:"type:text;not null;index" json:"transaction_id"`
	Date          *Date  `gorm:"index" json:"date"`

	// Customer
	CustomerID     string  `gorm:"type:text" json:"customer_id"`
	CustomerName   string  `gorm:"type:text;not null" json:"customer_name"`
	PhoneNumber    string  `gorm:"type:text" json:"phone_number"`
	Gender         string  `gorm:"type:text" json:"gender"`
	Age            *int    `gorm:"type:integer" json:"age"`
	CustomerRegion string  `gorm:"type:text;index" json:"customer_region"`
	CustomerType   string  `gorm:"type:text" json:"customer_type"`

	// Product
	ProductID       string                      `gorm:"type:text" json:"product_id"`
	ProductName     string                      `gorm:"type:text" json:"product_name"`
	Brand           string                      `gorm:"type:text" json:"brand"`
	ProductCategory string                      `gorm:"type:text;index" json:"product_category"`
	Subcategory     string                      `gorm:"type:text" json:"subcategory"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`

	// Amounts. Empty or unparseable source values are stored as NULL
	// rather than failing the write.
	Quantity           *int     `gorm:"type:integer" json:"quantity"`
	PricePerUnit       *float64 `gorm:"type:decimal(12,2)" json:"price_per_unit"`
	DiscountPercentage *float64 `gorm:"type:decimal(5,2)" json:"discount_percentage"`
	TotalAmount        *float64 `gorm:"type:decimal(12,2)" json:"total_amount"`
	FinalAmount        *float64 `gorm:"type:decimal(12,2)" json:"final_amount"`

	// Fulfilment
	PaymentMethod string `gorm:"type:text;index" json:"payment_method"`
	OrderStatus   string `gorm:"type:text" json:"order_status"`
	DeliveryType  string `gorm:"type:text" json:"delivery_type"`
	StoreID       string `gorm:"type:text" json:"store_id"`
	StoreLocation string `gorm:"type:text" json:"store_location"`
	SalespersonID string `gorm:"type:text" json:"salesperson_id"`
	EmployeeName  string `gorm:"type:text" json:"employee_name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SaleRecord) TableName() string {
	return "sales"
}

// CreateSaleRequest represents the POST /api/sales body. Most fields are
// optional; the service fills defaults for the missing ones.
type CreateSaleRequest struct {
	TransactionID      string   `json:"transaction_id"`
	Date               string   `json:"date"`
	CustomerID         string   `json:"customer_id"`
	CustomerName       string   `json:"customer_name"`
	PhoneNumber        string   `json:"phone_number"`
	Gender             string   `json:"gender"`
	Age                *int     `json:"age"`
	CustomerRegion     string   `json:"customer_region"`
	CustomerType       string   `json:"customer_type"`
	ProductID          string   `json:"product_id"`
	ProductName        string   `json:"product_name"`
	Brand              string   `json:"brand"`
	ProductCategory    string   `json:"product_category"`
	Subcategory        string   `json:"subcategory"`
	Tags               []string `json:"tags"`
	Quantity           *int     `json:"quantity"`
	PricePerUnit       *float64 `json:"price_per_unit"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	TotalAmount        *float64 `json:"total_amount"`
	FinalAmount        *float64 `json:"final_amount"`
	PaymentMethod      string   `json:"payment_method"`
	OrderStatus        string   `json:"order_status"`
	DeliveryType       string   `json:"delivery_type"`
	StoreID            string   `json:"store_id"`
	StoreLocation      string   `json:"store_location"`
	SalespersonID      string   `json:"salesperson_id"`
	EmployeeName       string   `json:"employee_name"`
}

// FilterCriteria mirrors the GET /api/sales query parameters. List-valued
// filters stay comma-joined here; the query builder splits them.
type FilterCriteria struct {
	Q              string
	Regions        string
	Genders        string
	Categories     string
	PaymentMethods string
	Tags           string
	AgeMin         *int
	AgeMax         *int
	DateFrom       string
	DateTo         string
	SortBy         string
	SortDir        string
	Page           int
	PageSize       int
}

// SalesListResponse is the paginated listing envelope. Total reflects the
// full filtered set, not just the current page.
type SalesListResponse struct {
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Items    []SaleRecord `json:"items"`
}

// SalesSummary holds whole-table aggregates. TotalAmount sums final_amount;
// TotalDiscount is the summed difference between total and final amounts.
type SalesSummary struct {
	TotalUnits        int64   `json:"totalUnits"`
	TotalAmount       float64 `json:"totalAmount"`
	TotalTransactions int64   `json:"totalTransactions"`
	TotalDiscount     float64 `json:"totalDiscount"`
}

// FilterOptions lists the distinct values used to populate filter widgets.
type FilterOptions struct {
	Regions        []string `json:"regions"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
}
