package errcodes

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"
)

//nolint:gochecknoglobals
var httpStatuses = map[failure.ErrorCode]int{
	ValidationError:        http.StatusBadRequest,
	NotFound:               http.StatusNotFound,
	TimeoutExceeded:        http.StatusGatewayTimeout,
	InvalidRobuxAmount:     http.StatusBadRequest,
	AmountBelowMinimum:     http.StatusBadRequest,
	AmountAboveMaximum:     http.StatusBadRequest,
	InvalidUsername:        http.StatusBadRequest,
	InvalidURL:             http.StatusBadRequest,
	MissingCheckoutParams:  http.StatusBadRequest,
	InvalidOrderID:         http.StatusBadRequest,
	InvalidSessionID:       http.StatusBadRequest,
	InvalidPaging:          http.StatusBadRequest,
	QuoteMismatch:          http.StatusBadRequest,
	SessionNotFound:        http.StatusNotFound,
	InvalidStateTransition: http.StatusConflict,
}

// HTTPStatus returns the response status for a domain error code. Unknown
// codes, InvalidFeeRate and InvalidTierTable included, are server faults.
func HTTPStatus(code failure.ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
