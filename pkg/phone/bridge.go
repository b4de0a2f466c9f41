package phone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"SmartObjectAI/pkg/nlp"
)

// IBridge talks to the device-control backend that actually drives the
// paired phone (ADB bridge in the demo setup).
type IBridge interface {
	Status(ctx context.Context) (bool, error)
	Connect(ctx context.Context, ip string, port string) (ConnectResult, error)
	Disconnect(ctx context.Context) error
	Call(ctx context.Context, contact nlp.Contact) error
	OpenMessage(ctx context.Context, contact nlp.Contact) error
	SendMessage(ctx context.Context, contact nlp.Contact, message string) error
}

type ConnectResult struct {
	Success bool   `json:"success"`
	Device  string `json:"device,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type statusResponse struct {
	Connected bool `json:"connected"`
}

type dispatchRequest struct {
	Contact     string `json:"contact"`
	PhoneNumber string `json:"phoneNumber"`
	Type        string `json:"type"`
	Message     string `json:"message,omitempty"`
}

type dispatchResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type bridgeClient struct {
	baseURL    string
	httpClient *http.Client
	watcher    *statusWatcher
}

func New() IBridge {
	baseURL := os.Getenv("PHONE_BRIDGE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5001"
	}

	return &bridgeClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		watcher: newStatusWatcher(),
	}
}

// Status prefers the live websocket watcher and falls back to an HTTP
// probe when the event stream is down.
func (b *bridgeClient) Status(ctx context.Context) (bool, error) {
	if b.watcher.IsConnected() {
		return true, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/api/phone/status", nil)
	if err != nil {
		return false, err
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false, err
	}

	return status.Connected, nil
}

func (b *bridgeClient) Connect(ctx context.Context, ip string, port string) (ConnectResult, error) {
	if ip == "" {
		ip = "192.168.29.67"
	}
	if port == "" {
		port = "5555"
	}

	body, err := json.Marshal(map[string]string{"ip": ip, "port": port})
	if err != nil {
		return ConnectResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/phone/connect", bytes.NewReader(body))
	if err != nil {
		return ConnectResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return ConnectResult{}, err
	}
	defer resp.Body.Close()

	var result ConnectResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ConnectResult{}, err
	}

	if result.Success {
		go b.watcher.Reconnect()
	}

	return result, nil
}

func (b *bridgeClient) Disconnect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/phone/disconnect", nil)
	if err != nil {
		return err
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b.watcher.Close()

	return nil
}

func (b *bridgeClient) Call(ctx context.Context, contact nlp.Contact) error {
	return b.dispatch(ctx, "/api/phone/call", dispatchRequest{
		Contact:     contact.Name,
		PhoneNumber: contact.PhoneNumber,
		Type:        "call",
	})
}

func (b *bridgeClient) OpenMessage(ctx context.Context, contact nlp.Contact) error {
	return b.dispatch(ctx, "/api/phone/message", dispatchRequest{
		Contact:     contact.Name,
		PhoneNumber: contact.PhoneNumber,
		Type:        "message",
	})
}

func (b *bridgeClient) SendMessage(ctx context.Context, contact nlp.Contact, message string) error {
	return b.dispatch(ctx, "/api/phone/send-message", dispatchRequest{
		Contact:     contact.Name,
		PhoneNumber: contact.PhoneNumber,
		Type:        "message",
		Message:     message,
	})
}

func (b *bridgeClient) dispatch(ctx context.Context, path string, payload dispatchRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result dispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	if !result.Success {
		if result.Error != "" {
			return fmt.Errorf("phone bridge rejected request: %s", result.Error)
		}
		return fmt.Errorf("phone bridge rejected request to %s", path)
	}

	return nil
}
