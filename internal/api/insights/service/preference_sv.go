package insightsService

import (
	"SmartObjectAI/internal/api/insights"
	"SmartObjectAI/internal/entity"
	contextPkg "SmartObjectAI/pkg/context"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// defaultPreferences are served until the user stores their own row.
var defaultPreferences = insights.PreferencesResponse{
	VoiceEnabled:  true,
	VoiceLanguage: "en-US",
	Theme:         "light",
	AutoSpeak:     true,
}

func (s *preferenceDomainImpl) GetPreferences(c context.Context, userID string) (insights.PreferencesResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.insightsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return insights.PreferencesResponse{}, err
	}

	prefs, err := repo.Preferences.GetPreferences(c, userID)
	if err != nil {
		if errors.Is(err, insights.ErrPreferencesNotFound) {
			return defaultPreferences, nil
		}
		return insights.PreferencesResponse{}, err
	}

	return makePreferencesResponse(prefs), nil
}

func (s *preferenceDomainImpl) UpdatePreferences(c context.Context, userID string, req insights.UpdatePreferencesRequest) (insights.PreferencesResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.insightsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return insights.PreferencesResponse{}, err
	}

	prefs := entity.UserPreferences{
		UserID:        userID,
		VoiceEnabled:  req.VoiceEnabled,
		VoiceLanguage: req.VoiceLanguage,
		Theme:         req.Theme,
		AutoSpeak:     req.AutoSpeak,
		UpdatedAt:     time.Now(),
	}

	if err := repo.Preferences.UpsertPreferences(c, prefs); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upsert preferences")
		return insights.PreferencesResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Preferences updated")

	return makePreferencesResponse(prefs), nil
}

func makePreferencesResponse(prefs entity.UserPreferences) insights.PreferencesResponse {
	return insights.PreferencesResponse{
		VoiceEnabled:  prefs.VoiceEnabled,
		VoiceLanguage: prefs.VoiceLanguage,
		Theme:         prefs.Theme,
		AutoSpeak:     prefs.AutoSpeak,
		UpdatedAt:     prefs.UpdatedAt,
	}
}
