package nlp

import (
	"errors"
	"testing"
)

var testContacts = []Contact{
	{Name: "mummy", PhoneNumber: "9876543210"},
	{Name: "daddy", PhoneNumber: "9876543211"},
	{Name: "brother", PhoneNumber: "9876543212"},
}

func TestParseCommandCallIntent(t *testing.T) {
	e := NewExtractor()

	intent, err := e.ParseCommand("Call Mummy please", testContacts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Intent != IntentCall {
		t.Fatalf("expected call intent, got %q", intent.Intent)
	}
	if intent.Contact.PhoneNumber != "9876543210" {
		t.Fatalf("expected mummy's number, got %q", intent.Contact.PhoneNumber)
	}
}

func TestParseCommandSendMessageIntent(t *testing.T) {
	e := NewExtractor()

	intent, err := e.ParseCommand("tell daddy dinner is ready", testContacts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Intent != IntentSendMessage {
		t.Fatalf("expected send_message intent, got %q", intent.Intent)
	}
	if intent.Contact.Name != "daddy" {
		t.Fatalf("expected daddy, got %q", intent.Contact.Name)
	}
	if intent.Message != "dinner is ready" {
		t.Fatalf("expected stripped message body, got %q", intent.Message)
	}
}

func TestParseCommandOpenMessageIntent(t *testing.T) {
	e := NewExtractor()

	intent, err := e.ParseCommand("message brother", testContacts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Intent != IntentMessage {
		t.Fatalf("expected message intent, got %q", intent.Intent)
	}
	if intent.Contact.Name != "brother" {
		t.Fatalf("expected brother, got %q", intent.Contact.Name)
	}
}

func TestParseCommandRegistryOrderResolvesContact(t *testing.T) {
	e := NewExtractor()

	intent, err := e.ParseCommand("call mummy and daddy", testContacts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Contact.Name != "mummy" {
		t.Fatalf("expected first registry match, got %q", intent.Contact.Name)
	}
}

func TestParseCommandNoContact(t *testing.T) {
	e := NewExtractor()

	if _, err := e.ParseCommand("call the plumber", testContacts); !errors.Is(err, ErrNoContact) {
		t.Fatalf("expected ErrNoContact, got %v", err)
	}
}

func TestParseCommandEmptyMessage(t *testing.T) {
	e := NewExtractor()

	if _, err := e.ParseCommand("send to mummy", testContacts); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestParseCommandUnknownCommand(t *testing.T) {
	e := NewExtractor()

	if _, err := e.ParseCommand("open the camera", testContacts); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestParseCommandStripsDiacritics(t *testing.T) {
	e := NewExtractor()

	intent, err := e.ParseCommand("cáll mummy", testContacts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Intent != IntentCall {
		t.Fatalf("expected call intent after normalization, got %q", intent.Intent)
	}
}
