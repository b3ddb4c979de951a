package dashboard

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/dashboard/stats", h.stats)
}

func (h *Handler) stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(stats)
}
