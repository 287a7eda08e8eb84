package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/api/middleware"
	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

// AccountHandler serves the signed-in customer's self-service routes.
type AccountHandler struct {
	accounts ports.AccountService
	auth     ports.AuthService
}

func NewAccountHandler(accounts ports.AccountService, auth ports.AuthService) *AccountHandler {
	return &AccountHandler{accounts: accounts, auth: auth}
}

// Me handles GET /api/users/me.
//
// @Summary      Current account
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Router       /api/users/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	user, err := h.accounts.Get(c.Request().Context(), middleware.Principal(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
}

func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.UpdateProfile(c.Request().Context(), middleware.Principal(c).ID, ports.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ChangePassword handles PUT /api/users/password. The current password must
// verify before the hash is rewritten.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ChangePassword(c.Request().Context(), middleware.Principal(c).ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password updated successfully"})
}

// --- Address book ---

func (h *AccountHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.accounts.ListAddresses(c.Request().Context(), middleware.Principal(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *AccountHandler) AddAddress(c echo.Context) error {
	var addr domain.PostalAddress
	if err := c.Bind(&addr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.accounts.AddAddress(c.Request().Context(), middleware.Principal(c).ID, addr)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AccountHandler) UpdateAddress(c echo.Context) error {
	var addr domain.PostalAddress
	if err := c.Bind(&addr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.accounts.UpdateAddress(c.Request().Context(), middleware.Principal(c).ID, c.Param("id"), addr)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AccountHandler) DeleteAddress(c echo.Context) error {
	if err := h.accounts.DeleteAddress(c.Request().Context(), middleware.Principal(c).ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "address deleted successfully"})
}

// --- Wishlist ---

func (h *AccountHandler) Wishlist(c echo.Context) error {
	products, err := h.accounts.Wishlist(c.Request().Context(), middleware.Principal(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *AccountHandler) AddToWishlist(c echo.Context) error {
	if err := h.accounts.AddToWishlist(c.Request().Context(), middleware.Principal(c).ID, c.Param("productId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product added to wishlist"})
}

func (h *AccountHandler) RemoveFromWishlist(c echo.Context) error {
	if err := h.accounts.RemoveFromWishlist(c.Request().Context(), middleware.Principal(c).ID, c.Param("productId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product removed from wishlist"})
}
