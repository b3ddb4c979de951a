package restaurant

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/restaurant-info", h.get)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/restaurant-info", h.update)
}

func (h *Handler) get(c *fiber.Ctx) error {
	info, err := h.service.Get()
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Restaurant info not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(info)
}

func (h *Handler) update(c *fiber.Ctx) error {
	info := new(Info)
	if err := c.BodyParser(info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if info.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name required"})
	}

	if err := h.service.Update(*info); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Restaurant info updated"})
}
