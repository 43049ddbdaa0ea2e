package constants

import "errors"

var (
	// ErrInvalidTransition is returned when a status change is not permitted
	// from the order's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrVerificationFailed is returned at checkout when the supplied PIN does
	// not match the current shop-wide verification PIN.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrStatusConflict is returned when a concurrent writer advanced the
	// order first. The caller must re-read before retrying.
	ErrStatusConflict = errors.New("order status changed concurrently")

	ErrNotFound         = errors.New("record not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
