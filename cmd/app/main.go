package main

import (
	"SmartObjectAI/internal/config"
	"SmartObjectAI/pkg/audio"
	"SmartObjectAI/pkg/detector"
	"SmartObjectAI/pkg/google"
	"SmartObjectAI/pkg/log"
	phonePkg "SmartObjectAI/pkg/phone"
	"SmartObjectAI/pkg/redis"
	"SmartObjectAI/pkg/smtp"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	googleProvider := google.New()
	redisServer := redis.New()
	smtpMailer := smtp.New()
	objectDetector := detector.New()
	transcriber := audio.NewTranscriptionService()
	tts := audio.NewTTSService()
	phoneBridge := phonePkg.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithGoogleProvider(googleProvider),
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithObjectDetector(objectDetector),
		config.WithTranscriber(transcriber),
		config.WithTTS(tts),
		config.WithPhoneBridge(phoneBridge),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithGeminiClient(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
