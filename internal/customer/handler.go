package customer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/customers", h.list)
	app.Get("/customers/:id", h.details)
}

func (h *Handler) list(c *fiber.Ctx) error {
	customers, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(customers)
}

func (h *Handler) details(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	details, err := h.service.Details(id)
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Customer not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(details)
}
