package insightsService

import (
	"SmartObjectAI/internal/api/insights"
	contextPkg "SmartObjectAI/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const exportScanLimit = 500

func (s *exportDomainImpl) ExportData(c context.Context, userID string) (insights.ExportDocument, error) {
	requestID := contextPkg.GetRequestID(c)

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return insights.ExportDocument{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return insights.ExportDocument{}, err
	}

	stats, err := s.activity.Stats(c, userID)
	if err != nil {
		return insights.ExportDocument{}, err
	}

	prefs, err := s.preferences.GetPreferences(c, userID)
	if err != nil {
		return insights.ExportDocument{}, err
	}

	scannerRepo, err := s.scannerRepo.NewClient(false)
	if err != nil {
		return insights.ExportDocument{}, err
	}

	scans, err := scannerRepo.Scans.GetScansByUser(c, userID, exportScanLimit)
	if err != nil {
		return insights.ExportDocument{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"scans":      len(scans),
	}).Info("User data exported")

	return insights.ExportDocument{
		User: insights.ExportUser{
			Email: user.Email,
			Name:  user.FullName,
		},
		Statistics:  stats,
		Preferences: prefs,
		Scans:       scans,
		ExportedAt:  time.Now(),
	}, nil
}
