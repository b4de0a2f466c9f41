package scannerService

import (
	"SmartObjectAI/internal/api/scanner"
	"SmartObjectAI/internal/entity"
	"SmartObjectAI/pkg/catalog"
	contextPkg "SmartObjectAI/pkg/context"
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *commandDomainImpl) ExecuteCommand(c context.Context, userID string, req scanner.ExecuteCommandRequest) (scanner.ExecuteCommandResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if strings.TrimSpace(req.Command) == "" {
		return scanner.ExecuteCommandResponse{}, scanner.ErrEmptyCommand
	}

	category, ok := catalog.Lookup(req.Object)
	if !ok {
		return scanner.ExecuteCommandResponse{}, scanner.ErrCategoryNotFound
	}

	action, matched := catalog.Match(category, req.Command)

	res := scanner.ExecuteCommandResponse{
		Object:   category.Tag,
		Command:  req.Command,
		Message:  action.Message,
		Icon:     action.Icon,
		Color:    action.Color,
		Matched:  matched,
		Executed: true,
	}

	// The command row is written whether or not a keyword matched, the
	// generic descriptor still counts as an executed action.
	commandID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate command ID")
		return scanner.ExecuteCommandResponse{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return scanner.ExecuteCommandResponse{}, err
	}

	if err := repo.Commands.CreateCommand(c, entity.VoiceCommand{
		ID:           commandID,
		UserID:       userID,
		CommandText:  req.Command,
		ActionResult: action.Message,
	}); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist voice command")
		return scanner.ExecuteCommandResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"object":     category.Tag,
		"matched":    matched,
	}).Info("Command executed")

	return res, nil
}

func (s *commandDomainImpl) TranscribeCommand(c context.Context, file *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := s.utils.ValidateAudioFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid audio file")
		return "", scanner.ErrInvalidAudioFile
	}

	text, err := s.transcriber.TranscribeAudio(c, file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to transcribe audio")
		return "", err
	}

	return text, nil
}

func (s *commandDomainImpl) Speak(c context.Context, text string) ([]byte, error) {
	requestID := contextPkg.GetRequestID(c)

	if strings.TrimSpace(text) == "" {
		return nil, scanner.ErrEmptyCommand
	}

	data, err := s.tts.GenerateAudio(text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to synthesize speech")
		return nil, err
	}

	return data, nil
}
