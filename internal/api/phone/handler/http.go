package phoneHandler

import (
	phoneService "SmartObjectAI/internal/api/phone/service"
	"SmartObjectAI/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PhoneHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	phoneService phoneService.PhoneService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ps phoneService.PhoneService,
) *PhoneHandler {
	return &PhoneHandler{
		log:          log,
		validator:    validator,
		middleware:   middleware,
		phoneService: ps,
	}
}

func (h *PhoneHandler) Start(srv fiber.Router) {
	phone := srv.Group("/phone")
	phone.Post("/command", h.middleware.NewTokenMiddleware, h.HandleCommand)
	phone.Get("/status", h.HandleStatus)
	phone.Post("/connect", h.HandleConnect)
	phone.Post("/disconnect", h.HandleDisconnect)

	phone.Get("/contacts", h.HandleListContacts)
	phone.Post("/contacts", h.middleware.NewTokenMiddleware, h.HandleAddContact)
	phone.Delete("/contacts/:name", h.middleware.NewTokenMiddleware, h.HandleRemoveContact)
}
