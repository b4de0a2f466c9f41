package detector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (IDetector, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Setenv("DETECT_API_URL", srv.URL)
	return New(), srv.Close
}

func TestDetectReadsConfidenceField(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req["image"] == "" {
			t.Error("expected image payload in request")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "predictions": [{"class": "cell phone", "confidence": 0.92}]}`))
	})
	defer closeFn()

	prediction, err := client.Detect(context.Background(), "data:image/jpeg;base64,Zg==")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.Label != "cell phone" {
		t.Fatalf("expected cell phone, got %q", prediction.Label)
	}
	if prediction.Confidence != 0.92 {
		t.Fatalf("expected confidence 0.92, got %v", prediction.Confidence)
	}
}

func TestDetectReadsScoreField(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "predictions": [{"class": "bottle", "score": 0.7}]}`))
	})
	defer closeFn()

	prediction, err := client.Detect(context.Background(), "data:image/jpeg;base64,Zg==")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.Confidence != 0.7 {
		t.Fatalf("expected score mapped to confidence, got %v", prediction.Confidence)
	}
}

func TestDetectTakesFirstPrediction(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "predictions": [{"class": "tv", "confidence": 0.6}, {"class": "phone", "confidence": 0.9}]}`))
	})
	defer closeFn()

	prediction, err := client.Detect(context.Background(), "data:image/jpeg;base64,Zg==")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.Label != "tv" {
		t.Fatalf("expected first prediction, got %q", prediction.Label)
	}
}

func TestDetectRejectsUnsuccessfulResponse(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "predictions": []}`))
	})
	defer closeFn()

	if _, err := client.Detect(context.Background(), "data:image/jpeg;base64,Zg=="); err == nil {
		t.Fatal("expected error for unsuccessful response")
	}
}

func TestDetectRejectsEmptyPredictions(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "predictions": []}`))
	})
	defer closeFn()

	if _, err := client.Detect(context.Background(), "data:image/jpeg;base64,Zg=="); err == nil {
		t.Fatal("expected error for empty predictions")
	}
}

func TestDetectRejectsNon200Status(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer closeFn()

	if _, err := client.Detect(context.Background(), "data:image/jpeg;base64,Zg=="); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}
