package catalog

import "testing"

func TestMatchFirstKeywordWins(t *testing.T) {
	phone, _ := Lookup("phone")

	action, ok := Match(phone, "Call my mother")
	if !ok {
		t.Fatal("expected a match for call command")
	}
	if action.Keyword != "call" {
		t.Fatalf("expected call action, got %q", action.Keyword)
	}
}

func TestMatchTableOrderBreaksOverlap(t *testing.T) {
	// "unmute" contains "mute", the table declares unmute first so the
	// more specific action wins.
	mic, _ := Lookup("mic")

	action, ok := Match(mic, "unmute the microphone")
	if !ok {
		t.Fatal("expected a match")
	}
	if action.Keyword != "unmute" {
		t.Fatalf("expected unmute action, got %q", action.Keyword)
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	tv, _ := Lookup("tv")

	action, ok := Match(tv, "VOLUME UP")
	if !ok || action.Keyword != "volume" {
		t.Fatalf("expected volume action, got %q (matched=%v)", action.Keyword, ok)
	}
}

func TestMatchFallsBackToGenericAction(t *testing.T) {
	light, _ := Lookup("light")

	action, ok := Match(light, "do a backflip")
	if ok {
		t.Fatal("expected no keyword match")
	}
	if action != GenericAction {
		t.Fatalf("expected generic action, got %+v", action)
	}
	if action.Message != "Command executed" || action.Icon != "✅" || action.Color != "#10b981" {
		t.Fatalf("unexpected generic descriptor: %+v", action)
	}
}
