// Package handlers содержит общие помощники для JSON ответов.
// Все ручки отвечают единым конвертом:
//
//	{"success": true,  "data": ...}
//	{"success": false, "data": {"message": "..."}}
//	{"success": false, "data": {"booking_errors": ["...", "..."]}}
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope единый формат ответа API
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorData struct {
	Message string `json:"message"`
}

type validationData struct {
	BookingErrors []string `json:"booking_errors"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON отправляет успешный ответ с данными
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeEnvelope(w, status, Envelope{Success: true, Data: data})
}

// RespondError отправляет ответ с ошибкой и сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, Envelope{Success: false, Data: errorData{Message: message}})
}

// RespondValidationErrors отправляет накопленный список ошибок валидации
func RespondValidationErrors(w http.ResponseWriter, errs []string) {
	writeEnvelope(w, http.StatusBadRequest, Envelope{
		Success: false,
		Data:    validationData{BookingErrors: errs},
	})
}

// RespondBadRequest отправляет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отправляет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondForbidden отправляет 403 с сообщением
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondInternalError отправляет 500 с типовым сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
