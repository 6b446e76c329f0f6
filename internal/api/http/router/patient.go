package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carelinkhq/carelink_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, h *handler.PatientHandler, authRequired fiber.Handler) {
	group := api.Group("/patients", authRequired)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
