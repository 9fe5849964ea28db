package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/query"
	"github.com/salesdesk/sales-management-be/internal/repositories"
)

type SalesService struct {
	store repositories.RecordStore
}

func NewSalesService(store repositories.RecordStore) *SalesService {
	return &SalesService{store: store}
}

// List answers the filtered, sorted, paginated listing. Count and Query
// run as two separate store calls, so total and items can drift under
// concurrent writes; that is acceptable for a dashboard read.
func (s *SalesService) List(criteria models.FilterCriteria) (*models.SalesListResponse, error) {
	plan := query.Build(criteria)

	total, err := s.store.Count(plan.Conds)
	if err != nil {
		return nil, err
	}

	items, err := s.store.Query(plan)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.SaleRecord{}
	}

	return &models.SalesListResponse{
		Total:    total,
		Page:     plan.Page,
		PageSize: plan.PageSize,
		Items:    items,
	}, nil
}

// Get returns a single sale by id, or nil when it does not exist.
func (s *SalesService) Get(id int64) (*models.SaleRecord, error) {
	return s.store.FindByID(id)
}

// Summary aggregates over the whole table, ignoring any active listing
// filters. Summary and listing are deliberately not filter-consistent.
func (s *SalesService) Summary() (*models.SalesSummary, error) {
	return s.store.Aggregate()
}

func (s *SalesService) FilterOptions() (*models.FilterOptions, error) {
	regions, err := s.store.DistinctValues("customer_region")
	if err != nil {
		return nil, err
	}
	categories, err := s.store.DistinctValues("product_category")
	if err != nil {
		return nil, err
	}
	paymentMethods, err := s.store.DistinctValues("payment_method")
	if err != nil {
		return nil, err
	}

	return &models.FilterOptions{
		Regions:        emptyIfNil(regions),
		Categories:     emptyIfNil(categories),
		PaymentMethods: emptyIfNil(paymentMethods),
	}, nil
}

// Create inserts a single sale, filling server-side defaults for the
// fields the request leaves out.
func (s *SalesService) Create(req *models.CreateSaleRequest) (*models.SaleRecord, error) {
	if req.CustomerName == "" {
		return nil, errors.New("customer name is required")
	}

	record := &models.SaleRecord{
		TransactionID:      req.TransactionID,
		CustomerID:         req.CustomerID,
		CustomerName:       req.CustomerName,
		PhoneNumber:        req.PhoneNumber,
		Gender:             req.Gender,
		Age:                req.Age,
		CustomerRegion:     req.CustomerRegion,
		CustomerType:       req.CustomerType,
		ProductID:          req.ProductID,
		ProductName:        req.ProductName,
		Brand:              req.Brand,
		ProductCategory:    req.ProductCategory,
		Subcategory:        req.Subcategory,
		Tags:               req.Tags,
		Quantity:           req.Quantity,
		PricePerUnit:       req.PricePerUnit,
		DiscountPercentage: req.DiscountPercentage,
		TotalAmount:        req.TotalAmount,
		FinalAmount:        req.FinalAmount,
		PaymentMethod:      req.PaymentMethod,
		OrderStatus:        req.OrderStatus,
		DeliveryType:       req.DeliveryType,
		StoreID:            req.StoreID,
		StoreLocation:      req.StoreLocation,
		SalespersonID:      req.SalespersonID,
		EmployeeName:       req.EmployeeName,
	}

	if record.TransactionID == "" {
		record.TransactionID = fmt.Sprintf("TXN%d", time.Now().UnixMilli())
	}
	if req.Date != "" {
		d, err := models.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		record.Date = &d
	} else {
		today := models.Today()
		record.Date = &today
	}
	if record.CustomerType == "" {
		record.CustomerType = "New"
	}
	if record.OrderStatus == "" {
		record.OrderStatus = "Completed"
	}
	if record.DeliveryType == "" {
		record.DeliveryType = "Standard"
	}
	if record.StoreID == "" {
		record.StoreID = "STORE-001"
	}
	if record.StoreLocation == "" {
		record.StoreLocation = "Mumbai"
	}
	if record.SalespersonID == "" {
		record.SalespersonID = "EMP-001"
	}
	if record.EmployeeName == "" {
		record.EmployeeName = "Sales Person"
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}

	if err := s.store.InsertOne(record); err != nil {
		return nil, err
	}
	return record, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
