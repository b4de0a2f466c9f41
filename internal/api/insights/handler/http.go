package insightsHandler

import (
	insightsService "SmartObjectAI/internal/api/insights/service"
	"SmartObjectAI/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InsightsHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	insightsService insightsService.InsightsService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	is insightsService.InsightsService,
) *InsightsHandler {
	return &InsightsHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		insightsService: is,
	}
}

func (h *InsightsHandler) Start(srv fiber.Router) {
	insights := srv.Group("/insights", h.middleware.NewTokenMiddleware)
	insights.Get("/stats", h.HandleStats)
	insights.Get("/activity", h.HandleActivity)
	insights.Get("/history", h.HandleHistory)
	insights.Delete("/history", h.HandleClearHistory)
	insights.Get("/preferences", h.HandleGetPreferences)
	insights.Put("/preferences", h.HandleUpdatePreferences)
	insights.Get("/export", h.HandleExport)
}
