package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

// statusFromError service 錯誤對應 HTTP status
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInvalidPromoCode),
		errors.Is(err, service.ErrPromoMinimumNotMet):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrPromoCodeExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError 500 不對外洩漏內部錯誤細節
func handleServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		api.ErrorJSON(w, status, nil, "internal server error")
		return
	}
	api.ErrorJSON(w, status, err, err.Error())
}
