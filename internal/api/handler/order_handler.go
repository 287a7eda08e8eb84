package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/api/metrics"
	"github.com/delispi/storefront-api/internal/api/middleware"
	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

const recentListLimit = 5

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items           []orderItemRequest   `json:"items" validate:"required,min=1,dive"`
	ShippingAddress domain.PostalAddress `json:"shippingAddress" validate:"required"`
	BillingAddress  domain.PostalAddress `json:"billingAddress"`
	TotalAmount     float64              `json:"totalAmount" validate:"required,gt=0"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// Create handles POST /api/orders for the signed-in customer.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	order, err := h.orders.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:          middleware.Principal(c).ID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		TotalAmount:     req.TotalAmount,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createOrderResponse{
		OrderID: order.ID,
		Message: "order created successfully",
	})
}

// ListMine handles GET /api/orders: the caller's orders, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.orders.ListForUser(c.Request().Context(), middleware.Principal(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// AdminList handles GET /api/admin/orders with customer projections.
func (h *OrderHandler) AdminList(c echo.Context) error {
	orders, err := h.orders.AdminList(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// AdminRecent handles GET /api/admin/orders/recent for the dashboard.
func (h *OrderHandler) AdminRecent(c echo.Context) error {
	orders, err := h.orders.AdminListRecent(c.Request().Context(), recentListLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) AdminGet(c echo.Context) error {
	order, err := h.orders.AdminGet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped completed cancelled"`
}

// AdminUpdateStatus handles PUT /api/admin/orders/:id.
func (h *OrderHandler) AdminUpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.AdminUpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
