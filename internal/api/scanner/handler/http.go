package scannerHandler

import (
	scannerService "SmartObjectAI/internal/api/scanner/service"
	"SmartObjectAI/internal/middleware"
	"SmartObjectAI/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ScannerHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	scannerService scannerService.ScannerService
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ss scannerService.ScannerService,
	utils utils.IUtils,
) *ScannerHandler {
	return &ScannerHandler{
		log:            log,
		validator:      validator,
		middleware:     middleware,
		scannerService: ss,
		utils:          utils,
	}
}

func (h *ScannerHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	scanner := srv.Group("/scanner")
	scanner.Post("/detect", h.middleware.NewTokenMiddleware, h.HandleDetect)
	scanner.Get("/categories", h.HandleListCategories)
	scanner.Get("/categories/:tag", h.HandleGetCategory)
	scanner.Post("/command", h.middleware.NewTokenMiddleware, h.HandleExecuteCommand)
	scanner.Post("/speak", h.middleware.NewTokenMiddleware, h.HandleSpeak)

	scanner.Use("/ws", wsMiddleware)
	scanner.Get("/ws", websocket.New(h.handleLiveDetection))
}
