package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Pricing.
	InvalidRobuxAmount failure.ErrorCode = "InvalidRobuxAmount"
	AmountBelowMinimum failure.ErrorCode = "AmountBelowMinimum"
	AmountAboveMaximum failure.ErrorCode = "AmountAboveMaximum"
	InvalidFeeRate     failure.ErrorCode = "InvalidFeeRate"
	InvalidTierTable   failure.ErrorCode = "InvalidTierTable"

	// Checkout.
	InvalidUsername        failure.ErrorCode = "InvalidUsername"
	InvalidURL             failure.ErrorCode = "InvalidURL"
	MissingCheckoutParams  failure.ErrorCode = "MissingCheckoutParams"
	InvalidOrderID         failure.ErrorCode = "InvalidOrderID"
	InvalidSessionID       failure.ErrorCode = "InvalidSessionID"
	SessionNotFound        failure.ErrorCode = "SessionNotFound"
	InvalidStateTransition failure.ErrorCode = "InvalidStateTransition"
	InvalidPaging          failure.ErrorCode = "InvalidPaging"
	QuoteMismatch          failure.ErrorCode = "QuoteMismatch"
)
