package models

import "errors"

// Domain error sentinels. Operations wrap these with fmt.Errorf("%w: ...")
// so callers can branch with errors.Is. All of them are recoverable and map
// to user-facing notices; none are fatal.
var (
	ErrValidation           = errors.New("invalid input")
	ErrCapability           = errors.New("plan limit reached")
	ErrSubscriptionRequired = errors.New("active subscription required")
	ErrSlotTaken            = errors.New("time slot already booked")
	ErrInvariant            = errors.New("operation refused")
	ErrNotFound             = errors.New("record not found")
)
