package product

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type payload struct {
	ID         int             `json:"id"`
	Title      string          `json:"Title"`
	TitleAr    string          `json:"Title_ar"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	CategoryID int             `json:"categoryId"`
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products", h.list)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/products", h.create)
	app.Put("/products", h.update)
	app.Delete("/products", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func validatePayload(p *payload) string {
	if p.Title == "" {
		return "Title required"
	}
	if p.Price.IsNegative() {
		return "price must be >= 0"
	}
	return ""
}

func (h *Handler) create(c *fiber.Ctx) error {
	p := new(payload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if msg := validatePayload(p); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": msg})
	}

	err := h.service.Create(Product{
		Title:      p.Title,
		TitleAr:    p.TitleAr,
		Price:      p.Price,
		Image:      p.Image,
		CategoryID: p.CategoryID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product added"})
}

func (h *Handler) update(c *fiber.Ctx) error {
	p := new(payload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if p.ID == 0 || p.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "ID and Title required"})
	}
	if msg := validatePayload(p); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": msg})
	}

	err := h.service.Update(Product{
		ID:         p.ID,
		Title:      p.Title,
		TitleAr:    p.TitleAr,
		Price:      p.Price,
		Image:      p.Image,
		CategoryID: p.CategoryID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product updated"})
}

func (h *Handler) delete(c *fiber.Ctx) error {
	p := new(payload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if err := h.service.Delete(p.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted"})
}
