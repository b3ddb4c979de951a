package category

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type payload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/categories", h.list)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/categories", h.create)
	app.Put("/categories", h.update)
	app.Delete("/categories", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(categories)
}

func (h *Handler) create(c *fiber.Ctx) error {
	p := new(payload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if p.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Name required"})
	}

	if err := h.service.Create(p.Name, p.NameAr); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category added"})
}

func (h *Handler) update(c *fiber.Ctx) error {
	p := new(payload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if p.ID == 0 || p.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "ID and Name required"})
	}

	if err := h.service.Update(p.ID, p.Name, p.NameAr); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category updated"})
}

func (h *Handler) delete(c *fiber.Ctx) error {
	p := new(payload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if err := h.service.Delete(p.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category deleted"})
}
