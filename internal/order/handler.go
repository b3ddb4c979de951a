package order

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
	app.Get("/orders", h.list)
	app.Get("/orders/:id/items", h.items)
	// intake is called by the storefront after payment, before any admin
	// session exists
	app.Post("/orders", h.create)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/orders/:id/status", h.updateStatus)
}

func (h *Handler) list(c *fiber.Ctx) error {
	page := 1
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}

	pageSize := 10
	if v := c.Query("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	period := c.Query("period", "all")

	orders, totalCount, err := h.service.List(page, pageSize, period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"orders":     orders,
		"totalCount": totalCount,
	})
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	p := new(statusPayload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if p.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Status required"})
	}

	if err := h.service.UpdateStatus(orderID, p.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) items(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	items, err := h.service.Items(orderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) create(c *fiber.Ctx) error {
	in := new(CreateInput)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if in.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "customerEmail required"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "items required"})
	}
	for _, it := range in.Items {
		if it.Qty < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "item qty must be >= 1"})
		}
	}
	if in.TotalAmount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "totalAmount must be >= 0"})
	}

	orderID, err := h.service.Create(*in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": orderID})
}
