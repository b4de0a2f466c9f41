package insightsService

import (
	"SmartObjectAI/internal/api/insights"
	contextPkg "SmartObjectAI/pkg/context"
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	defaultActivityLimit = 10
	historyScanLimit     = 50
	recentCommandCount   = 5
)

func (s *activityDomainImpl) Stats(c context.Context, userID string) (insights.StatsResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.scannerRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return insights.StatsResponse{}, err
	}

	scans, err := repo.Scans.CountScansByUser(c, userID)
	if err != nil {
		return insights.StatsResponse{}, err
	}

	commands, err := repo.Commands.CountCommandsByUser(c, userID)
	if err != nil {
		return insights.StatsResponse{}, err
	}

	// Every stored command maps to one executed action, matched or not.
	return insights.StatsResponse{
		Scans:    scans,
		Commands: commands,
		Actions:  commands,
	}, nil
}

func (s *activityDomainImpl) Activity(c context.Context, userID string, limit int) ([]insights.ActivityItem, error) {
	requestID := contextPkg.GetRequestID(c)

	if limit <= 0 {
		limit = defaultActivityLimit
	}

	repo, err := s.scannerRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	scans, err := repo.Scans.GetScansByUser(c, userID, limit)
	if err != nil {
		return nil, err
	}

	commands, err := repo.Commands.GetCommandsByUser(c, userID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]insights.ActivityItem, 0, len(scans)+len(commands))
	for _, scan := range scans {
		items = append(items, insights.ActivityItem{
			Type:        "scan",
			Description: fmt.Sprintf("Scanned %s", scan.ObjectName),
			CreatedAt:   scan.CreatedAt,
		})
	}
	for _, command := range commands {
		items = append(items, insights.ActivityItem{
			Type:        "command",
			Description: fmt.Sprintf("Command: %s", command.CommandText),
			CreatedAt:   command.ExecutedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func (s *activityDomainImpl) History(c context.Context, userID string) ([]insights.HistoryItem, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.scannerRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	scans, err := repo.Scans.GetScansByUser(c, userID, historyScanLimit)
	if err != nil {
		return nil, err
	}

	recentCommands, err := repo.Commands.GetCommandsByUser(c, userID, recentCommandCount)
	if err != nil {
		return nil, err
	}

	items := make([]insights.HistoryItem, 0, len(scans))
	for _, scan := range scans {
		items = append(items, insights.HistoryItem{
			Scan:           scan,
			RecentCommands: recentCommands,
		})
	}

	return items, nil
}

func (s *activityDomainImpl) ClearHistory(c context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(c)

	// Both tables are cleared in one transaction so a partial wipe
	// never survives.
	repo, err := s.scannerRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Scans.DeleteScansByUser(c, userID); err != nil {
		_ = repo.Rollback()
		return err
	}

	if err := repo.Commands.DeleteCommandsByUser(c, userID); err != nil {
		_ = repo.Rollback()
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit history clear")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("History cleared")

	return nil
}
