package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/api/metrics"
)

// ContactHandler receives contact form submissions. Messages are logged for
// the support workflow, not persisted.
type ContactHandler struct {
	logger zerolog.Logger
}

func NewContactHandler(logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Submit handles POST /api/contact.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.logger.Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("subject", req.Subject).
		Msg("contact form submission")
	metrics.ContactMessagesTotal.Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "message sent successfully"})
}
