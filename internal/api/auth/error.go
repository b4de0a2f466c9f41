package auth

import (
	"SmartObjectAI/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrUserWithEmailNotFound  = response.NewError(http.StatusNotFound, "user with email not found")
	ErrPasswordSame           = response.NewError(http.StatusBadRequest, "password same as before")
	ErrorTokenExpired         = response.NewError(http.StatusBadRequest, "token expired or not found")
	ErrorInvalidToken         = response.NewError(http.StatusUnauthorized, "invalid token")
	ErrInvalidOTP             = response.NewError(http.StatusBadRequest, "invalid otp")
)
