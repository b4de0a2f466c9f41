package insights

import (
	"SmartObjectAI/pkg/response"
	"net/http"
)

var (
	ErrPreferencesNotFound = response.NewError(http.StatusNotFound, "preferences not set")
)
