// Package failure carries the HTTP status and rejection reason of an error up to the transport layer.
package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that knows how it should be answered. Reason is a stable
// machine-readable kind clients can switch on; Message is for humans.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

const (
	ReasonNotFound           = "not_found"
	ReasonInactive           = "inactive"
	ReasonForbidden          = "forbidden"
	ReasonPastDate           = "past_date"
	ReasonTooFarInAdvance    = "too_far_in_advance"
	ReasonAlreadyReserved    = "already_reserved"
	ReasonBlocked            = "blocked"
	ReasonQuotaExceeded      = "quota_exceeded"
	ReasonMaxActiveExceeded  = "max_active_exceeded"
	ReasonInvalidMaterial    = "invalid_material"
	ReasonAlreadyCancelled   = "already_cancelled"
	ReasonCannotCancelPast   = "cannot_cancel_past"
	ReasonInvariantViolation = "invariant_violation"
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, reason, msg string) error {
	return &Failure{Code: code, Message: msg, Reason: reason}
}

// fromError keeps nil as nil so callers can wrap a result unconditionally.
func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return newFailure(code, "", err.Error())
}

func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, "", msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, "", msg)
}

// InternalError marks err as a server fault. The message is logged but never shown to clients.
func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, ReasonNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, "", msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, ReasonForbidden, msg)
}

// Rejection is a business rule refusing a request for reason.
func Rejection(code int, reason, msg string) error {
	return newFailure(code, reason, msg)
}

func as(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}

// GetCode returns the status of err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	if fail, ok := as(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the rejection reason of err, empty when it has none.
func GetReason(err error) string {
	if fail, ok := as(err); ok {
		return fail.Reason
	}

	return ""
}

func HasReason(err error, reason string) bool {
	return GetReason(err) == reason
}
