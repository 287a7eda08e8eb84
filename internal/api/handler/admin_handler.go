package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/api/metrics"
	"github.com/delispi/storefront-api/internal/core/ports"
)

// AdminHandler serves the dashboard aggregates and the customer console.
type AdminHandler struct {
	stats    ports.StatsService
	accounts ports.AccountService
}

func NewAdminHandler(stats ports.StatsService, accounts ports.AccountService) *AdminHandler {
	return &AdminHandler{stats: stats, accounts: accounts}
}

// Stats handles GET /api/admin/stats: current-month figures for orders,
// revenue, users and products with month-over-month change percentages.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	start := time.Now()
	stats, err := h.stats.Dashboard(c.Request().Context(), time.Now())
	if err != nil {
		return err
	}
	metrics.StatsDuration.WithLabelValues("dashboard").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, stats)
}

// Charts handles GET /api/admin/charts: six months of sales and the top
// category distribution.
//
// @Summary      Dashboard chart data
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ChartData
// @Router       /api/admin/charts [get]
func (h *AdminHandler) Charts(c echo.Context) error {
	start := time.Now()
	charts, err := h.stats.Charts(c.Request().Context(), time.Now())
	if err != nil {
		return err
	}
	metrics.StatsDuration.WithLabelValues("charts").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, charts)
}

// ListUsers handles GET /api/admin/users: every account, newest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.accounts.AdminListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// RecentUsers handles GET /api/admin/users/recent for the dashboard.
func (h *AdminHandler) RecentUsers(c echo.Context) error {
	users, err := h.accounts.AdminListRecentUsers(c.Request().Context(), recentListLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListCustomers handles GET /api/admin/customers: accounts with the customer
// role only.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.accounts.AdminListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *AdminHandler) GetCustomer(c echo.Context) error {
	customer, err := h.accounts.AdminGetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

type updateCustomerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
}

func (h *AdminHandler) UpdateCustomer(c echo.Context) error {
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.accounts.AdminUpdateCustomer(c.Request().Context(), c.Param("id"), ports.UpdateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *AdminHandler) DeleteCustomer(c echo.Context) error {
	if err := h.accounts.AdminDeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "customer deleted successfully"})
}
