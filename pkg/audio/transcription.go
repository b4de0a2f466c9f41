package audio

import (
	"context"
	"mime/multipart"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type ITranscriber interface {
	TranscribeAudio(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type TranscriptionService struct {
	client   *openai.Client
	language string
}

func NewTranscriptionService() ITranscriber {
	language := os.Getenv("TRANSCRIPTION_LANGUAGE")
	if language == "" {
		language = "en"
	}

	client := openai.NewClient(os.Getenv("OPENAI_API_KEY"))
	return &TranscriptionService{client: client, language: language}
}

func (t *TranscriptionService) TranscribeAudio(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   src,
		FilePath: file.Filename,
		Language: t.language,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
