package phone

import (
	"SmartObjectAI/pkg/response"
	"net/http"
)

var (
	ErrContactNotFound      = response.NewError(http.StatusNotFound, "contact not recognized")
	ErrContactAlreadyExists = response.NewError(http.StatusConflict, "contact already exists")
	ErrEmptyMessage         = response.NewError(http.StatusBadRequest, "please specify a message")
	ErrUnknownCommand       = response.NewError(http.StatusBadRequest, "command not recognized")
	ErrBridgeUnavailable    = response.NewError(http.StatusBadGateway, "phone bridge unavailable")
)
