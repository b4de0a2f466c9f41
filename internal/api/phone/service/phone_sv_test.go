package phoneService

import (
	"context"
	"errors"
	"testing"

	"SmartObjectAI/internal/api/phone"
	"SmartObjectAI/pkg/nlp"
	phonePkg "SmartObjectAI/pkg/phone"

	"github.com/sirupsen/logrus"
)

type fakeBridge struct {
	lastPath    string
	lastContact nlp.Contact
	lastMessage string
	err         error
}

func (f *fakeBridge) Status(ctx context.Context) (bool, error) {
	return true, f.err
}

func (f *fakeBridge) Connect(ctx context.Context, ip string, port string) (phonePkg.ConnectResult, error) {
	if f.err != nil {
		return phonePkg.ConnectResult{}, f.err
	}
	return phonePkg.ConnectResult{Success: true, Device: ip + ":" + port}, nil
}

func (f *fakeBridge) Disconnect(ctx context.Context) error {
	return f.err
}

func (f *fakeBridge) Call(ctx context.Context, contact nlp.Contact) error {
	f.lastPath = "call"
	f.lastContact = contact
	return f.err
}

func (f *fakeBridge) OpenMessage(ctx context.Context, contact nlp.Contact) error {
	f.lastPath = "message"
	f.lastContact = contact
	return f.err
}

func (f *fakeBridge) SendMessage(ctx context.Context, contact nlp.Contact, message string) error {
	f.lastPath = "send-message"
	f.lastContact = contact
	f.lastMessage = message
	return f.err
}

func newTestService(bridge phonePkg.IBridge) PhoneService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger, bridge)
}

func TestProcessCommandCallDispatchesToBridge(t *testing.T) {
	bridge := &fakeBridge{}
	svc := newTestService(bridge)

	res, err := svc.Command().ProcessCommand(context.Background(), phone.PhoneCommandRequest{Command: "call mummy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bridge.lastPath != "call" {
		t.Fatalf("expected call dispatch, got %q", bridge.lastPath)
	}
	if bridge.lastContact.Name != "mummy" {
		t.Fatalf("expected mummy, got %q", bridge.lastContact.Name)
	}
	if !res.Success || res.Intent != "call" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestProcessCommandSendMessageCarriesBody(t *testing.T) {
	bridge := &fakeBridge{}
	svc := newTestService(bridge)

	res, err := svc.Command().ProcessCommand(context.Background(), phone.PhoneCommandRequest{Command: "tell daddy i am on my way"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bridge.lastPath != "send-message" {
		t.Fatalf("expected send-message dispatch, got %q", bridge.lastPath)
	}
	if bridge.lastMessage != "i am on my way" {
		t.Fatalf("expected stripped message, got %q", bridge.lastMessage)
	}
	if res.Contact != "daddy" {
		t.Fatalf("expected daddy, got %q", res.Contact)
	}
}

func TestProcessCommandEmptyMessageNothingDispatched(t *testing.T) {
	bridge := &fakeBridge{}
	svc := newTestService(bridge)

	_, err := svc.Command().ProcessCommand(context.Background(), phone.PhoneCommandRequest{Command: "send to mummy"})
	if !errors.Is(err, phone.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if bridge.lastPath != "" {
		t.Fatalf("expected no dispatch, got %q", bridge.lastPath)
	}
}

func TestProcessCommandUnknownContact(t *testing.T) {
	svc := newTestService(&fakeBridge{})

	_, err := svc.Command().ProcessCommand(context.Background(), phone.PhoneCommandRequest{Command: "call the office"})
	if !errors.Is(err, phone.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestProcessCommandUnknownIntent(t *testing.T) {
	svc := newTestService(&fakeBridge{})

	_, err := svc.Command().ProcessCommand(context.Background(), phone.PhoneCommandRequest{Command: "open the camera"})
	if !errors.Is(err, phone.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestProcessCommandBridgeFailure(t *testing.T) {
	bridge := &fakeBridge{err: errors.New("connection refused")}
	svc := newTestService(bridge)

	_, err := svc.Command().ProcessCommand(context.Background(), phone.PhoneCommandRequest{Command: "call mummy"})
	if !errors.Is(err, phone.ErrBridgeUnavailable) {
		t.Fatalf("expected ErrBridgeUnavailable, got %v", err)
	}
}
