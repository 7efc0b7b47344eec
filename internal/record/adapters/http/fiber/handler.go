package fiber

import (
	"context"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type RecordClickUseCase interface {
	Execute(ctx context.Context) error
}

type ClickHandler struct {
	recordUC RecordClickUseCase
}

func NewClickHandler(recordUC RecordClickUseCase) *ClickHandler {
	return &ClickHandler{recordUC: recordUC}
}

// RecordClick godoc
// @Summary Record a button click
// @Description Persists one click event with a server-assigned timestamp
// @Tags Clicks
// @Produce json
// @Success 201 "Click recorded, empty body"
// @Failure 500 {object} ErrorResponse
// @Router /clicked [post]
func (h *ClickHandler) RecordClick(c *fiber.Ctx) error {
	if err := h.recordUC.Execute(c.UserContext()); err != nil {
		// Every request gets exactly one response; a store failure must
		// surface as an explicit 5xx, never a hang.
		log.Printf("record click: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusCreated).Send(nil)
}
