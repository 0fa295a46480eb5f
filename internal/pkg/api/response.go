package api

import (
	"encoding/json"
	"net/http"
)

// Response 標準成功回應格式
type Response struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

// ResponseError 標準錯誤回應格式
type ResponseError struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func SuccessJSON(w http.ResponseWriter, data any, meta any) {
	writeJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

func CreatedJSON(w http.ResponseWriter, data any, meta any) {
	writeJSON(w, http.StatusCreated, Response{Data: data, Meta: meta})
}

func ErrorJSON(w http.ResponseWriter, status int, err error, message string) {
	body := ResponseError{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	writeJSON(w, status, body)
}
