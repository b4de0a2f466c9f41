package scannerService

import (
	"context"
	"errors"
	"testing"

	"SmartObjectAI/internal/api/scanner"
	scannerRepository "SmartObjectAI/internal/api/scanner/repository"
	"SmartObjectAI/internal/entity"
	"SmartObjectAI/pkg/catalog"
	"SmartObjectAI/pkg/detector"
	"SmartObjectAI/pkg/gemini"

	"github.com/sirupsen/logrus"
)

const testImage = "data:image/jpeg;base64,Zg=="

type fakeDetector struct {
	prediction detector.Prediction
	err        error
}

func (f *fakeDetector) Detect(ctx context.Context, imageDataURL string) (detector.Prediction, error) {
	return f.prediction, f.err
}

type fakeGemini struct {
	result gemini.ClassifyResult
	err    error
}

func (f *fakeGemini) ClassifyObject(ctx context.Context, imageData []byte) (gemini.ClassifyResult, error) {
	return f.result, f.err
}

func (f *fakeGemini) Close() {}

type fakeRepo struct {
	scans    *fakeScanStore
	commands *fakeCommandStore
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{scans: &fakeScanStore{}, commands: &fakeCommandStore{}}
}

func (f *fakeRepo) NewClient(tx bool) (scannerRepository.Client, error) {
	return scannerRepository.Client{
		Scans:    f.scans,
		Commands: f.commands,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeScanStore struct {
	created []entity.ScannedObject
}

func (f *fakeScanStore) CreateScan(ctx context.Context, scan entity.ScannedObject) error {
	f.created = append(f.created, scan)
	return nil
}

func (f *fakeScanStore) GetScansByUser(ctx context.Context, userID string, limit int) ([]entity.ScannedObject, error) {
	return f.created, nil
}

func (f *fakeScanStore) CountScansByUser(ctx context.Context, userID string) (int, error) {
	return len(f.created), nil
}

func (f *fakeScanStore) DeleteScansByUser(ctx context.Context, userID string) error {
	f.created = nil
	return nil
}

type fakeCommandStore struct {
	created []entity.VoiceCommand
}

func (f *fakeCommandStore) CreateCommand(ctx context.Context, command entity.VoiceCommand) error {
	f.created = append(f.created, command)
	return nil
}

func (f *fakeCommandStore) GetCommandsByUser(ctx context.Context, userID string, limit int) ([]entity.VoiceCommand, error) {
	return f.created, nil
}

func (f *fakeCommandStore) CountCommandsByUser(ctx context.Context, userID string) (int, error) {
	return len(f.created), nil
}

func (f *fakeCommandStore) DeleteCommandsByUser(ctx context.Context, userID string) error {
	f.created = nil
	return nil
}

func newDetectService(repo scannerRepository.Repository, det detector.IDetector, gem gemini.IGemini) ScannerService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger, repo, det, gem, nil, nil, nil, utilsPkg())
}

func TestDetectObjectRemoteTierWins(t *testing.T) {
	repo := newFakeRepo()
	svc := newDetectService(repo,
		&fakeDetector{prediction: detector.Prediction{Label: "cell phone", Confidence: 0.92}},
		&fakeGemini{err: errors.New("should not be called")},
	)

	res, err := svc.Detect().DetectObject(context.Background(), "user-1", testImage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Object != "phone" {
		t.Fatalf("expected normalized phone tag, got %q", res.Object)
	}
	if res.Source != "Remote Detection" {
		t.Fatalf("expected remote source, got %q", res.Source)
	}
	if res.Confidence != 92 {
		t.Fatalf("expected confidence 92, got %d", res.Confidence)
	}
	if len(res.Commands) == 0 {
		t.Fatal("expected suggested commands")
	}
}

func TestDetectObjectFallsBackToGemini(t *testing.T) {
	repo := newFakeRepo()
	svc := newDetectService(repo,
		&fakeDetector{err: errors.New("connection refused")},
		&fakeGemini{result: gemini.ClassifyResult{Class: "water bottle", Confidence: 0.8}},
	)

	res, err := svc.Detect().DetectObject(context.Background(), "user-1", testImage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Object != "bottle" {
		t.Fatalf("expected bottle, got %q", res.Object)
	}
	if res.Source != "Gemini Detection" {
		t.Fatalf("expected gemini source, got %q", res.Source)
	}
}

func TestDetectObjectFallsBackToSimulation(t *testing.T) {
	repo := newFakeRepo()
	svc := newDetectService(repo,
		&fakeDetector{err: errors.New("connection refused")},
		&fakeGemini{err: errors.New("quota exceeded")},
	)

	res, err := svc.Detect().DetectObject(context.Background(), "user-1", testImage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != "Simulated Detection" {
		t.Fatalf("expected simulated source, got %q", res.Source)
	}
	if res.Confidence != 85 {
		t.Fatalf("expected fixed 85%% confidence, got %d", res.Confidence)
	}
	if _, ok := catalog.Lookup(res.Object); !ok {
		t.Fatalf("simulation returned unknown category %q", res.Object)
	}
}

func TestDetectObjectPersistsScan(t *testing.T) {
	repo := newFakeRepo()
	svc := newDetectService(repo,
		&fakeDetector{prediction: detector.Prediction{Label: "laptop", Confidence: 0.75}},
		&fakeGemini{},
	)

	if _, err := svc.Detect().DetectObject(context.Background(), "user-7", testImage); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.scans.created) != 1 {
		t.Fatalf("expected 1 persisted scan, got %d", len(repo.scans.created))
	}

	scan := repo.scans.created[0]
	if scan.UserID != "user-7" {
		t.Fatalf("expected owner user-7, got %q", scan.UserID)
	}
	if scan.ObjectType != "tv" {
		t.Fatalf("expected laptop normalized to tv, got %q", scan.ObjectType)
	}
	if scan.ConfidenceScore != 0.75 {
		t.Fatalf("expected raw score persisted, got %v", scan.ConfidenceScore)
	}
	if scan.ID == "" {
		t.Fatal("expected generated scan id")
	}
}

func TestDetectFrameDoesNotPersist(t *testing.T) {
	repo := newFakeRepo()
	svc := newDetectService(repo,
		&fakeDetector{prediction: detector.Prediction{Label: "speaker", Confidence: 0.9}},
		&fakeGemini{},
	)

	res, err := svc.Detect().DetectFrame(context.Background(), testImage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Object != "mic" {
		t.Fatalf("expected speaker label folded into mic, got %q", res.Object)
	}
	if len(repo.scans.created) != 0 {
		t.Fatalf("expected no persisted scans for live frames, got %d", len(repo.scans.created))
	}
}

func TestCategoriesAndLookup(t *testing.T) {
	svc := newDetectService(newFakeRepo(), &fakeDetector{}, &fakeGemini{})

	if got := len(svc.Detect().Categories()); got != 9 {
		t.Fatalf("expected 9 categories, got %d", got)
	}

	if _, err := svc.Detect().Category("fan"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Detect().Category("toaster"); !errors.Is(err, scanner.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
