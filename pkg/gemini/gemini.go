package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type ClassifyResult struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

type IGemini interface {
	ClassifyObject(ctx context.Context, imageData []byte) (ClassifyResult, error)
	Close()
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

const classifyPrompt = `You are an object classifier for household objects.
Look at the image and respond with ONLY a JSON object, no markdown, in the form:
{"class": "<single lowercase word naming the main object>", "confidence": <number between 0 and 1>}`

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-pro-vision"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) ClassifyObject(ctx context.Context, imageData []byte) (ClassifyResult, error) {
	model := g.client.GenerativeModel(g.modelName)

	img := genai.ImageData("image/jpeg", imageData)
	res, err := model.GenerateContent(ctx, genai.Text(classifyPrompt), img)
	if err != nil {
		return ClassifyResult{}, err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return ClassifyResult{}, errors.New("no response from Gemini API")
	}

	response := res.Candidates[0].Content.Parts[0]
	text, ok := response.(genai.Text)
	if !ok {
		return ClassifyResult{}, errors.New("unexpected response format from Gemini API")
	}

	return parseClassifyResult(string(text))
}

// parseClassifyResult extracts the JSON object from the model output,
// tolerating markdown fences and surrounding prose.
func parseClassifyResult(text string) (ClassifyResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ClassifyResult{}, errors.New("no JSON object in Gemini response")
	}

	var result ClassifyResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return ClassifyResult{}, err
	}

	if result.Class == "" {
		return ClassifyResult{}, errors.New("gemini response missing object class")
	}

	return result, nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
