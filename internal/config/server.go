package config

import (
	"SmartObjectAI/database/postgres"
	authHandler "SmartObjectAI/internal/api/auth/handler"
	authRepository "SmartObjectAI/internal/api/auth/repository"
	authService "SmartObjectAI/internal/api/auth/service"
	insightsHandler "SmartObjectAI/internal/api/insights/handler"
	insightsRepository "SmartObjectAI/internal/api/insights/repository"
	insightsService "SmartObjectAI/internal/api/insights/service"
	phoneHandler "SmartObjectAI/internal/api/phone/handler"
	phoneService "SmartObjectAI/internal/api/phone/service"
	scannerHandler "SmartObjectAI/internal/api/scanner/handler"
	scannerRepository "SmartObjectAI/internal/api/scanner/repository"
	scannerService "SmartObjectAI/internal/api/scanner/service"
	"SmartObjectAI/internal/middleware"
	"SmartObjectAI/pkg/audio"
	"SmartObjectAI/pkg/bcrypt"
	"SmartObjectAI/pkg/detector"
	"SmartObjectAI/pkg/gemini"
	"SmartObjectAI/pkg/google"
	phonePkg "SmartObjectAI/pkg/phone"
	"SmartObjectAI/pkg/redis"
	"SmartObjectAI/pkg/s3"
	"SmartObjectAI/pkg/smtp"
	"SmartObjectAI/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	objectDetector detector.IDetector
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	transcriber    audio.ITranscriber
	tts            audio.ITTS
	phoneBridge    phonePkg.IBridge
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithObjectDetector(objectDetector detector.IDetector) ServerOption {
	return func(s *Server) error {
		s.objectDetector = objectDetector
		return nil
	}
}

func WithPhoneBridge(bridge phonePkg.IBridge) ServerOption {
	return func(s *Server) error {
		s.phoneBridge = bridge
		return nil
	}
}

func WithTranscriber(transcriber audio.ITranscriber) ServerOption {
	return func(s *Server) error {
		s.transcriber = transcriber
		return nil
	}
}

func WithTTS(tts audio.ITTS) ServerOption {
	return func(s *Server) error {
		s.tts = tts
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.smtpMailer, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider, s.redisServer)

	// Scanner Domain
	scannerRepo := scannerRepository.New(s.db, s.log)
	scannerServices := scannerService.New(s.log, scannerRepo, s.objectDetector, s.geminiClient, s.s3Client, s.transcriber, s.tts, s.utils)
	scannerHandlers := scannerHandler.New(s.log, s.validator, s.middleware, scannerServices, s.utils)

	// Phone Domain
	phoneServices := phoneService.New(s.log, s.phoneBridge)
	phoneHandlers := phoneHandler.New(s.log, s.validator, s.middleware, phoneServices)

	// Insights Domain
	insightsRepo := insightsRepository.New(s.db, s.log)
	insightsServices := insightsService.New(s.log, insightsRepo, scannerRepo, authRepo)
	insightsHandlers := insightsHandler.New(s.log, s.validator, s.middleware, insightsServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, scannerHandlers, phoneHandlers, insightsHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.geminiClient != nil {
			s.geminiClient.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
