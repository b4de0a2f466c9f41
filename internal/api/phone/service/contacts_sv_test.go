package phoneService

import (
	"errors"
	"testing"

	"SmartObjectAI/internal/api/phone"
	"SmartObjectAI/pkg/nlp"
)

func TestContactRegistrySeededInOrder(t *testing.T) {
	registry := newContactDomain()

	contacts := registry.List()
	if len(contacts) != 4 {
		t.Fatalf("expected 4 seeded contacts, got %d", len(contacts))
	}

	wantOrder := []string{"mummy", "daddy", "brother", "sister"}
	for i, name := range wantOrder {
		if contacts[i].Name != name {
			t.Errorf("contact %d: expected %q, got %q", i, name, contacts[i].Name)
		}
	}
}

func TestContactRegistryAddAndRemove(t *testing.T) {
	registry := newContactDomain()

	if err := registry.Add(nlp.Contact{Name: "Uncle", PhoneNumber: "9876543214"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contacts := registry.List()
	if contacts[len(contacts)-1].Name != "uncle" {
		t.Fatalf("expected lowercased name appended, got %q", contacts[len(contacts)-1].Name)
	}

	if err := registry.Add(nlp.Contact{Name: "uncle", PhoneNumber: "111"}); !errors.Is(err, phone.ErrContactAlreadyExists) {
		t.Fatalf("expected ErrContactAlreadyExists, got %v", err)
	}

	if err := registry.Remove("uncle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := registry.Remove("uncle"); !errors.Is(err, phone.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactRegistryListReturnsCopy(t *testing.T) {
	registry := newContactDomain()

	contacts := registry.List()
	contacts[0].Name = "mutated"

	if registry.List()[0].Name != "mummy" {
		t.Fatal("List must not expose internal slice")
	}
}
