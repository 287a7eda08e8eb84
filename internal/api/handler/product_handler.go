package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/core/ports"
)

// ProductHandler serves the public catalog and the admin product CRUD.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"originalPrice"`
	CategoryID    string  `json:"categoryId" validate:"required"`
	StockQuantity int     `json:"stockQuantity" validate:"min=0"`
	SKU           string  `json:"sku" validate:"required"`
	Image         string  `json:"image"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		CategoryID:    r.CategoryID,
		StockQuantity: r.StockQuantity,
		SKU:           r.SKU,
		Image:         r.Image,
		Status:        r.Status,
	}
}

// List handles GET /api/products.
//
// @Summary      List active products
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Category id"
// @Param        search    query  string  false  "Name/description search"
// @Param        limit     query  int     false  "Page size (default 20)"
// @Param        offset    query  int     false  "Page offset"
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	offset, _ := strconv.ParseInt(c.QueryParam("offset"), 10, 64)

	products, err := h.catalog.ListProducts(c.Request().Context(), ports.ProductFilter{
		CategoryID: c.QueryParam("category"),
		Search:     c.QueryParam("search"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Categories handles GET /api/categories.
//
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /api/categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// AdminList handles GET /api/admin/products: everything, newest first, with
// category names attached.
func (h *ProductHandler) AdminList(c echo.Context) error {
	products, err := h.catalog.AdminListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) AdminGet(c echo.Context) error {
	product, err := h.catalog.AdminGetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// AdminCreate handles POST /api/admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/products [post]
func (h *ProductHandler) AdminCreate(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) AdminUpdate(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) AdminDelete(c echo.Context) error {
	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted successfully"})
}
