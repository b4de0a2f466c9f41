package insightsService

import (
	"context"
	"testing"
	"time"

	scannerRepository "SmartObjectAI/internal/api/scanner/repository"
	"SmartObjectAI/internal/entity"

	"github.com/sirupsen/logrus"
)

type fakeScannerRepo struct {
	scans    []entity.ScannedObject
	commands []entity.VoiceCommand
	cleared  bool
}

func (f *fakeScannerRepo) NewClient(tx bool) (scannerRepository.Client, error) {
	return scannerRepository.Client{
		Scans:    &fakeScanStore{repo: f},
		Commands: &fakeCommandStore{repo: f},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeScanStore struct {
	repo *fakeScannerRepo
}

func (f *fakeScanStore) CreateScan(ctx context.Context, scan entity.ScannedObject) error {
	f.repo.scans = append(f.repo.scans, scan)
	return nil
}

func (f *fakeScanStore) GetScansByUser(ctx context.Context, userID string, limit int) ([]entity.ScannedObject, error) {
	if len(f.repo.scans) > limit {
		return f.repo.scans[:limit], nil
	}
	return f.repo.scans, nil
}

func (f *fakeScanStore) CountScansByUser(ctx context.Context, userID string) (int, error) {
	return len(f.repo.scans), nil
}

func (f *fakeScanStore) DeleteScansByUser(ctx context.Context, userID string) error {
	f.repo.scans = nil
	f.repo.cleared = true
	return nil
}

type fakeCommandStore struct {
	repo *fakeScannerRepo
}

func (f *fakeCommandStore) CreateCommand(ctx context.Context, command entity.VoiceCommand) error {
	f.repo.commands = append(f.repo.commands, command)
	return nil
}

func (f *fakeCommandStore) GetCommandsByUser(ctx context.Context, userID string, limit int) ([]entity.VoiceCommand, error) {
	if len(f.repo.commands) > limit {
		return f.repo.commands[:limit], nil
	}
	return f.repo.commands, nil
}

func (f *fakeCommandStore) CountCommandsByUser(ctx context.Context, userID string) (int, error) {
	return len(f.repo.commands), nil
}

func (f *fakeCommandStore) DeleteCommandsByUser(ctx context.Context, userID string) error {
	f.repo.commands = nil
	return nil
}

func newActivityDomain(repo *fakeScannerRepo) ActivityDomain {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &activityDomainImpl{log: logger, scannerRepo: repo}
}

func TestStatsActionsMirrorCommands(t *testing.T) {
	repo := &fakeScannerRepo{
		scans: []entity.ScannedObject{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}},
		commands: []entity.VoiceCommand{
			{ID: "c1"}, {ID: "c2"},
		},
	}

	stats, err := newActivityDomain(repo).Stats(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Scans != 3 {
		t.Fatalf("expected 3 scans, got %d", stats.Scans)
	}
	if stats.Commands != 2 || stats.Actions != 2 {
		t.Fatalf("expected commands==actions==2, got %d/%d", stats.Commands, stats.Actions)
	}
}

func TestActivityMergesAndSortsDescending(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeScannerRepo{
		scans: []entity.ScannedObject{
			{ObjectName: "Television", CreatedAt: base.Add(3 * time.Hour)},
			{ObjectName: "Smartphone", CreatedAt: base.Add(1 * time.Hour)},
		},
		commands: []entity.VoiceCommand{
			{CommandText: "turn on", ExecutedAt: base.Add(2 * time.Hour)},
		},
	}

	items, err := newActivityDomain(repo).Activity(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 merged items, got %d", len(items))
	}

	if items[0].Description != "Scanned Television" {
		t.Fatalf("expected newest scan first, got %q", items[0].Description)
	}
	if items[1].Description != "Command: turn on" {
		t.Fatalf("expected command second, got %q", items[1].Description)
	}
	if items[2].Description != "Scanned Smartphone" {
		t.Fatalf("expected oldest scan last, got %q", items[2].Description)
	}

	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Fatal("activity items are not sorted newest first")
		}
	}
}

func TestActivityCapsAtLimit(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeScannerRepo{}
	for i := 0; i < 5; i++ {
		repo.scans = append(repo.scans, entity.ScannedObject{
			ObjectName: "Smart Light",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		repo.commands = append(repo.commands, entity.VoiceCommand{
			CommandText: "dim",
			ExecutedAt:  base.Add(time.Duration(i) * time.Second),
		})
	}

	items, err := newActivityDomain(repo).Activity(context.Background(), "user-1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected capped list of 4, got %d", len(items))
	}
}

func TestClearHistoryWipesBothTables(t *testing.T) {
	repo := &fakeScannerRepo{
		scans:    []entity.ScannedObject{{ID: "s1"}},
		commands: []entity.VoiceCommand{{ID: "c1"}},
	}

	if err := newActivityDomain(repo).ClearHistory(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.scans) != 0 || len(repo.commands) != 0 {
		t.Fatal("expected both stores emptied")
	}
}
