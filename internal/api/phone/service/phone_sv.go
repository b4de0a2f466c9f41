package phoneService

import (
	"context"
	"errors"
	"fmt"

	"SmartObjectAI/internal/api/phone"
	contextPkg "SmartObjectAI/pkg/context"
	"SmartObjectAI/pkg/nlp"

	"github.com/sirupsen/logrus"
)

func (s *commandDomainImpl) ProcessCommand(c context.Context, req phone.PhoneCommandRequest) (phone.PhoneCommandResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	intent, err := s.extractor.ParseCommand(req.Command, s.contacts.List())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"command":    req.Command,
		}).Warn("Failed to parse phone command")

		switch {
		case errors.Is(err, nlp.ErrNoContact):
			return phone.PhoneCommandResponse{}, phone.ErrContactNotFound
		case errors.Is(err, nlp.ErrEmptyMessage):
			return phone.PhoneCommandResponse{}, phone.ErrEmptyMessage
		default:
			return phone.PhoneCommandResponse{}, phone.ErrUnknownCommand
		}
	}

	var status string
	switch intent.Intent {
	case nlp.IntentCall:
		err = s.bridge.Call(c, intent.Contact)
		status = fmt.Sprintf("Calling %s...", intent.Contact.Name)
	case nlp.IntentMessage:
		err = s.bridge.OpenMessage(c, intent.Contact)
		status = fmt.Sprintf("Opening messages for %s...", intent.Contact.Name)
	case nlp.IntentSendMessage:
		err = s.bridge.SendMessage(c, intent.Contact, intent.Message)
		status = fmt.Sprintf("Sending message to %s...", intent.Contact.Name)
	default:
		return phone.PhoneCommandResponse{}, phone.ErrUnknownCommand
	}

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"intent":     string(intent.Intent),
		}).Error("Phone bridge dispatch failed")
		return phone.PhoneCommandResponse{}, phone.ErrBridgeUnavailable
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     string(intent.Intent),
		"contact":    intent.Contact.Name,
	}).Info("Phone command dispatched")

	return phone.PhoneCommandResponse{
		Success: true,
		Intent:  string(intent.Intent),
		Contact: intent.Contact.Name,
		Message: intent.Message,
		Status:  status,
	}, nil
}

func (s *commandDomainImpl) Status(c context.Context) phone.BridgeStatusResponse {
	connected, err := s.bridge.Status(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Warn("Failed to read bridge status")
		return phone.BridgeStatusResponse{Connected: false}
	}

	return phone.BridgeStatusResponse{Connected: connected}
}

func (s *commandDomainImpl) Connect(c context.Context, req phone.ConnectRequest) (phone.ConnectResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	result, err := s.bridge.Connect(c, req.IP, req.Port)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to connect to phone bridge")
		return phone.ConnectResponse{}, phone.ErrBridgeUnavailable
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"device":     result.Device,
		"success":    result.Success,
	}).Info("Phone bridge connect")

	return phone.ConnectResponse{
		Success: result.Success,
		Device:  result.Device,
		Message: result.Message,
	}, nil
}

func (s *commandDomainImpl) Disconnect(c context.Context) error {
	if err := s.bridge.Disconnect(c); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to disconnect phone bridge")
		return phone.ErrBridgeUnavailable
	}

	return nil
}
