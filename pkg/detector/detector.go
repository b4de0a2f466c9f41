package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Prediction is the single tagged result type for every detection
// backend. Wire payloads with either "confidence" or "score" fields are
// normalized into it at this boundary.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type IDetector interface {
	Detect(ctx context.Context, imageDataURL string) (Prediction, error)
}

type detectRequest struct {
	Image string `json:"image"`
}

type wirePrediction struct {
	Class      string   `json:"class"`
	Confidence *float64 `json:"confidence"`
	Score      *float64 `json:"score"`
}

type detectResponse struct {
	Success     bool             `json:"success"`
	Predictions []wirePrediction `json:"predictions"`
}

type detectorClient struct {
	baseURL    string
	httpClient *http.Client
}

func New() IDetector {
	baseURL := os.Getenv("DETECT_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000/detect"
	}

	return &detectorClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (d *detectorClient) Detect(ctx context.Context, imageDataURL string) (Prediction, error) {
	body, err := json.Marshal(detectRequest{Image: imageDataURL})
	if err != nil {
		return Prediction{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return Prediction{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("detection service returned status %d", resp.StatusCode)
	}

	var result detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Prediction{}, err
	}

	if !result.Success || len(result.Predictions) == 0 {
		return Prediction{}, errors.New("detection service returned no predictions")
	}

	return normalize(result.Predictions[0]), nil
}

func normalize(p wirePrediction) Prediction {
	confidence := 0.0
	if p.Confidence != nil {
		confidence = *p.Confidence
	} else if p.Score != nil {
		confidence = *p.Score
	}

	return Prediction{
		Label:      p.Class,
		Confidence: confidence,
	}
}
