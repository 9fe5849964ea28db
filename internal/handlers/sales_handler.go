package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/salesdesk/sales-management-be/internal/apperrors"
	"github.com/salesdesk/sales-management-be/internal/models"
	"github.com/salesdesk/sales-management-be/internal/services"
	"github.com/salesdesk/sales-management-be/internal/utils"
)

type SalesHandler struct {
	salesService *services.SalesService
}

func NewSalesHandler(salesService *services.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// GetSales godoc
// @Summary List sales
// @Description List sales with filtering, sorting and pagination
// @Tags Sales
// @Produce json
// @Param q query string false "Search in customer name or phone number"
// @Param regions query string false "Comma-separated customer regions"
// @Param genders query string false "Comma-separated genders"
// @Param categories query string false "Comma-separated product categories"
// @Param tags query string false "Comma-separated tags (overlap match)"
// @Param paymentMethods query string false "Comma-separated payment methods"
// @Param ageMin query int false "Minimum age (inclusive)"
// @Param ageMax query int false "Maximum age (inclusive)"
// @Param dateFrom query string false "Start date (inclusive, YYYY-MM-DD)"
// @Param dateTo query string false "End date (inclusive, YYYY-MM-DD)"
// @Param sortBy query string false "Sort field"
// @Param sortDir query string false "Sort direction (asc, desc)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 50)" default(10)
// @Success 200 {object} models.SalesListResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales [get]
func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	criteria := models.FilterCriteria{
		Q:              c.Query("q"),
		Regions:        c.Query("regions"),
		Genders:        c.Query("genders"),
		Categories:     c.Query("categories"),
		PaymentMethods: c.Query("paymentMethods"),
		Tags:           c.Query("tags"),
		AgeMin:         queryIntPtr(c, "ageMin"),
		AgeMax:         queryIntPtr(c, "ageMax"),
		DateFrom:       c.Query("dateFrom"),
		DateTo:         c.Query("dateTo"),
		SortBy:         c.Query("sortBy"),
		SortDir:        c.Query("sortDir"),
		Page:           c.QueryInt("page", 1),
		PageSize:       c.QueryInt("pageSize", 10),
	}

	response, err := h.salesService.List(criteria)
	if err != nil {
		utils.LogError("failed to fetch sales", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(response)
}

// GetSummary godoc
// @Summary Sales summary
// @Description Whole-table aggregates: units, amount, transactions, discount
// @Tags Sales
// @Produce json
// @Success 200 {object} models.SalesSummary
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales/summary [get]
func (h *SalesHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.salesService.Summary()
	if err != nil {
		utils.LogError("failed to fetch summary", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(summary)
}

// GetFilterOptions godoc
// @Summary Filter options
// @Description Distinct regions, categories and payment methods for filter widgets
// @Tags Sales
// @Produce json
// @Success 200 {object} models.FilterOptions
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales/filters [get]
func (h *SalesHandler) GetFilterOptions(c *fiber.Ctx) error {
	options, err := h.salesService.FilterOptions()
	if err != nil {
		utils.LogError("failed to fetch filter options", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(options)
}

// CreateSale godoc
// @Summary Create a sale
// @Description Create a single sale record; missing fields get server-side defaults
// @Tags Sales
// @Accept json
// @Produce json
// @Param sale body models.CreateSaleRequest true "Sale data"
// @Success 201 {object} models.SaleRecord
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales [post]
func (h *SalesHandler) CreateSale(c *fiber.Ctx) error {
	var req models.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sale, err := h.salesService.Create(&req)
	if err != nil {
		// Store failures are server faults; everything else from Create is
		// a validation problem with the request.
		var writeErr *apperrors.WriteError
		if errors.As(err, &writeErr) {
			utils.LogError("failed to create sale", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}

// GetSale godoc
// @Summary Get a sale
// @Description Fetch one sale record by its numeric id
// @Tags Sales
// @Produce json
// @Param id path int true "Sale id"
// @Success 200 {object} models.SaleRecord
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales/{id} [get]
func (h *SalesHandler) GetSale(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sale id",
		})
	}

	sale, err := h.salesService.Get(int64(id))
	if err != nil {
		utils.LogError("failed to fetch sale", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	if sale == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sale not found",
		})
	}

	return c.JSON(sale)
}

// queryIntPtr parses an optional integer query parameter. Absent or
// malformed values mean "no constraint".
func queryIntPtr(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
