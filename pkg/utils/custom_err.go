package utils

import "errors"

var (
	ErrClientNotFound             = errors.New("client not found")
	ErrServiceNotFound            = errors.New("service not found")
	ErrSubscriptionNotFound       = errors.New("subscription not found")
	ErrClientSubscriptionNotFound = errors.New("client subscription not found")
	ErrBookingNotFound            = errors.New("booking not found")
	ErrLicenseKeyNotFound         = errors.New("license key not found")

	ErrDuplicatePhone        = errors.New("client with this phone number already exists")
	ErrDuplicateLicenseKey   = errors.New("license key already exists")
	ErrNoRemainingUses       = errors.New("no remaining uses on subscription")
	ErrSubscriptionInactive  = errors.New("subscription is not active")
	ErrRemoveExceedsRemain   = errors.New("cannot remove more uses than remain")
	ErrScaleAmountTooSmall   = errors.New("amount must be at least 1")
	ErrScaleAmountTooLarge   = errors.New("amount exceeds the maximum uses addable at once")
	ErrUnknownScaleDirection = errors.New("scale direction must be add or remove")
	ErrNoNewServices         = errors.New("no new services to add")
	ErrInvalidStatusChange   = errors.New("booking status cannot be changed from a terminal state")

	ErrDatabaseError = errors.New("database error")
)
