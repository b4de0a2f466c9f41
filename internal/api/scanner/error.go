package scanner

import (
	"SmartObjectAI/pkg/response"
	"net/http"
)

var (
	ErrNoImagePayload      = response.NewError(http.StatusBadRequest, "no image provided")
	ErrInvalidImagePayload = response.NewError(http.StatusBadRequest, "invalid image payload")
	ErrCategoryNotFound    = response.NewError(http.StatusNotFound, "object category not found")
	ErrEmptyCommand        = response.NewError(http.StatusBadRequest, "command text is empty")
	ErrInvalidAudioFile    = response.NewError(http.StatusBadRequest, "invalid audio file")
	ErrInvalidFileType     = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge        = response.NewError(http.StatusBadRequest, "file too large")
)
