package nlp

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNoContact      = errors.New("no known contact in command")
	ErrEmptyMessage   = errors.New("no message content in command")
	ErrUnknownCommand = errors.New("command does not match any phone intent")
)

// stopWords are stripped from a send-message command to recover the
// free-text message body. Contact names are stripped as well.
var stopWords = []string{"tell", "send", "message", "to"}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ParseCommand classifies a freeform transcript into a phone intent and
// resolves the target contact against the registry, in registry order.
// Send-message commands additionally carry the remaining message body.
func (e *Extractor) ParseCommand(command string, contacts []Contact) (*PhoneIntent, error) {
	text := cleanText(command)

	switch {
	case strings.Contains(text, "call"):
		contact, ok := findContact(text, contacts)
		if !ok {
			return nil, ErrNoContact
		}
		return &PhoneIntent{Intent: IntentCall, Contact: contact}, nil

	case strings.Contains(text, "tell") || strings.Contains(text, "send"):
		contact, ok := findContact(text, contacts)
		if !ok {
			return nil, ErrNoContact
		}
		message := extractMessage(text, contacts)
		if message == "" {
			return nil, ErrEmptyMessage
		}
		return &PhoneIntent{Intent: IntentSendMessage, Contact: contact, Message: message}, nil

	case strings.Contains(text, "message") || strings.Contains(text, "msg"):
		contact, ok := findContact(text, contacts)
		if !ok {
			return nil, ErrNoContact
		}
		return &PhoneIntent{Intent: IntentMessage, Contact: contact}, nil
	}

	return nil, ErrUnknownCommand
}

func findContact(text string, contacts []Contact) (Contact, bool) {
	for _, contact := range contacts {
		if strings.Contains(text, strings.ToLower(contact.Name)) {
			return contact, true
		}
	}
	return Contact{}, false
}

func extractMessage(text string, contacts []Contact) string {
	for _, word := range stopWords {
		text = strings.ReplaceAll(text, word, " ")
	}
	for _, contact := range contacts {
		text = strings.ReplaceAll(text, strings.ToLower(contact.Name), " ")
	}

	return strings.Join(strings.Fields(text), " ")
}

func cleanText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)

	cleaned, _, err := transform.String(t, text)
	if err != nil {
		return text
	}

	return cleaned
}
