package scannerService

import (
	"context"
	"errors"
	"testing"

	"SmartObjectAI/internal/api/scanner"
	"SmartObjectAI/pkg/utils"
)

func utilsPkg() utils.IUtils {
	return utils.New()
}

func newCommandService(repo *fakeRepo) ScannerService {
	return newDetectService(repo, &fakeDetector{}, &fakeGemini{})
}

func TestExecuteCommandMatchesKeyword(t *testing.T) {
	repo := newFakeRepo()
	svc := newCommandService(repo)

	res, err := svc.Command().ExecuteCommand(context.Background(), "user-1", scanner.ExecuteCommandRequest{
		Object:  "tv",
		Command: "turn the volume up",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Matched {
		t.Fatal("expected keyword match")
	}
	if res.Message != "Adjusting volume" {
		t.Fatalf("unexpected action message: %q", res.Message)
	}
}

func TestExecuteCommandGenericFallbackStillPersists(t *testing.T) {
	repo := newFakeRepo()
	svc := newCommandService(repo)

	res, err := svc.Command().ExecuteCommand(context.Background(), "user-1", scanner.ExecuteCommandRequest{
		Object:  "light",
		Command: "do something unexpected",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Matched {
		t.Fatal("expected generic fallback, not a match")
	}
	if res.Message != "Command executed" {
		t.Fatalf("expected generic message, got %q", res.Message)
	}
	if !res.Executed {
		t.Fatal("generic fallback still counts as executed")
	}

	if len(repo.commands.created) != 1 {
		t.Fatalf("expected 1 persisted command, got %d", len(repo.commands.created))
	}
	if repo.commands.created[0].ActionResult != "Command executed" {
		t.Fatalf("unexpected persisted result: %q", repo.commands.created[0].ActionResult)
	}
}

func TestExecuteCommandEmptyText(t *testing.T) {
	svc := newCommandService(newFakeRepo())

	_, err := svc.Command().ExecuteCommand(context.Background(), "user-1", scanner.ExecuteCommandRequest{
		Object:  "tv",
		Command: "   ",
	})
	if !errors.Is(err, scanner.ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestExecuteCommandUnknownCategory(t *testing.T) {
	svc := newCommandService(newFakeRepo())

	_, err := svc.Command().ExecuteCommand(context.Background(), "user-1", scanner.ExecuteCommandRequest{
		Object:  "spaceship",
		Command: "launch",
	})
	if !errors.Is(err, scanner.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
