package response

import (
	"encoding/json"
	"net/http"
	"reservas/shared/constant"
	"reservas/shared/failure"
	"reservas/shared/logger"
)

type Error struct {
	Error string `json:"error" example:"reservation not found"`
}

type Message struct {
	Message string `json:"message" example:"Reserva actualizada"`
}

type Created struct {
	Message string `json:"message" example:"Reserva creada"`
	ID      int64  `json:"id"      example:"1"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithCreated sends a 201 response carrying the id assigned by the store
func WithCreated(writer http.ResponseWriter, message string, id int64) {
	response(writer, http.StatusCreated, Created{Message: message, ID: id})
}

// WithJSON sends the payload as the bare response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message. Errors without a failure code become 500.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), Error{Error: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(response); err != nil {
		logger.ErrorWithStack(err)
	}
}
