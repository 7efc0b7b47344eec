package fiber

import (
	"context"
	"log"
	"net/http"

	"click-counter-service/internal/query/core/domain"

	"github.com/gofiber/fiber/v2"
)

type ListClicksUseCase interface {
	Execute(ctx context.Context) ([]domain.ClickEvent, error)
}

type ClicksHandler struct {
	listUC ListClicksUseCase
}

func NewClicksHandler(listUC ListClicksUseCase) *ClicksHandler {
	return &ClicksHandler{listUC: listUC}
}

// ListClicks godoc
// @Summary List all recorded clicks
// @Description Returns every stored click event in insertion order
// @Tags Clicks
// @Produce json
// @Success 200 {array} ClickResponse
// @Failure 500 {object} ErrorResponse
// @Router /clicks [get]
func (h *ClicksHandler) ListClicks(c *fiber.Ctx) error {
	clicks, err := h.listUC.Execute(c.UserContext())
	if err != nil {
		log.Printf("list clicks: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := make([]ClickResponse, 0, len(clicks))
	for _, click := range clicks {
		resp = append(resp, ClickResponse{ClickTime: click.ClickTime})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
