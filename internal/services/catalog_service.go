package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/salesdesk/sales-management-be/internal/models"
)

// CatalogService backs the customer and product endpoints. There is no
// customer/product persistence in scope; records are echoed back with a
// generated id, matching the stubbed reference behavior.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

func (s *CatalogService) CreateCustomer(req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" {
		return nil, errors.New("customer name is required")
	}

	customerType := req.Type
	if customerType == "" {
		customerType = "New"
	}

	return &models.Customer{
		ID:        fmt.Sprintf("CUST-%05d", 10000+rand.Intn(90000)),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Region:    req.Region,
		Type:      customerType,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return []models.Product{}, nil
}

func (s *CatalogService) CreateProduct(req *models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, errors.New("product name is required")
	}

	return &models.Product{
		ID:          fmt.Sprintf("PROD-%04d", 1000+rand.Intn(9000)),
		Name:        req.Name,
		Category:    req.Category,
		Brand:       req.Brand,
		Price:       req.Price,
		Stock:       req.Stock,
		Subcategory: req.Subcategory,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
