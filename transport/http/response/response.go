package response

import (
	"encoding/json"
	"net/http"
	"salas/shared/constant"
	"salas/shared/failure"
	"salas/shared/logger"
)

// Data wraps a successful payload as {"data": ...}.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every failed request. Reason is set for business rejections only.
type Error struct {
	Error  *string `json:"error,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithJSON[T any](writer http.ResponseWriter, code int, payload T) {
	write(writer, code, Data[T]{Data: &payload})
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithError renders err with its failure code. Anything that is not a failure.Failure
// is logged and answered with a generic internal error.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	body := Error{Reason: failure.GetReason(err)}

	msg := err.Error()
	if code == http.StatusInternalServerError {
		logger.ErrorWithStack(err)
		msg = constant.ResponseErrorInternal
	}

	body.Error = &msg

	write(writer, code, body)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(payload); err != nil {
		logger.ErrorWithStack(err)
	}
}
