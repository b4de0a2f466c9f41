package authHandler

import (
	authService "SmartObjectAI/internal/api/auth/service"
	"SmartObjectAI/internal/middleware"
	"SmartObjectAI/pkg/google"
	"SmartObjectAI/pkg/redis"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
	redisServer redis.IRedis) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
		redisServer:    redisServer,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/login", h.HandleLogin)
	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)
	auth.Delete("/logout", h.middleware.NewTokenMiddleware, h.HandleLogout)
	auth.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetMe)
	auth.Patch("/profile", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	auth.Post("/reset-password", h.HandleRequestPasswordReset)
	auth.Patch("/password", h.HandleUpdatePassword)
}
