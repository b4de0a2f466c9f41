package insightsService

import (
	"SmartObjectAI/internal/api/insights"
	"context"

	authRepository "SmartObjectAI/internal/api/auth/repository"
	insightsRepository "SmartObjectAI/internal/api/insights/repository"
	scannerRepository "SmartObjectAI/internal/api/scanner/repository"

	"github.com/sirupsen/logrus"
)

type InsightsService interface {
	Activity() ActivityDomain
	Preferences() PreferenceDomain
	Export() ExportDomain
}

type ActivityDomain interface {
	Stats(c context.Context, userID string) (insights.StatsResponse, error)
	Activity(c context.Context, userID string, limit int) ([]insights.ActivityItem, error)
	History(c context.Context, userID string) ([]insights.HistoryItem, error)
	ClearHistory(c context.Context, userID string) error
}

type PreferenceDomain interface {
	GetPreferences(c context.Context, userID string) (insights.PreferencesResponse, error)
	UpdatePreferences(c context.Context, userID string, req insights.UpdatePreferencesRequest) (insights.PreferencesResponse, error)
}

type ExportDomain interface {
	ExportData(c context.Context, userID string) (insights.ExportDocument, error)
}

type insightsService struct {
	activityDomain   ActivityDomain
	preferenceDomain PreferenceDomain
	exportDomain     ExportDomain
}

func (s *insightsService) Activity() ActivityDomain {
	return s.activityDomain
}

func (s *insightsService) Preferences() PreferenceDomain {
	return s.preferenceDomain
}

func (s *insightsService) Export() ExportDomain {
	return s.exportDomain
}

type activityDomainImpl struct {
	log         *logrus.Logger
	scannerRepo scannerRepository.Repository
}

type preferenceDomainImpl struct {
	log          *logrus.Logger
	insightsRepo insightsRepository.Repository
}

type exportDomainImpl struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	scannerRepo scannerRepository.Repository
	activity    ActivityDomain
	preferences PreferenceDomain
}

func New(log *logrus.Logger,
	insightsRepo insightsRepository.Repository,
	scannerRepo scannerRepository.Repository,
	authRepo authRepository.Repository,
) InsightsService {
	activity := &activityDomainImpl{log: log, scannerRepo: scannerRepo}
	preferences := &preferenceDomainImpl{log: log, insightsRepo: insightsRepo}

	return &insightsService{
		activityDomain:   activity,
		preferenceDomain: preferences,
		exportDomain: &exportDomainImpl{
			log:         log,
			authRepo:    authRepo,
			scannerRepo: scannerRepo,
			activity:    activity,
			preferences: preferences,
		},
	}
}
