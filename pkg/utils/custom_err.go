package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidSelection   = errors.New("selection is not one of the allowed options")
	ErrDatabaseError      = errors.New("database error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Generation engine taxonomy. QuotaExceeded is user-recoverable via an
	// upgrade; LedgerUnavailable and ProviderUnavailable are safe to retry;
	// GenerationFailed is not; Busy means a generation is already in flight
	// for this user.
	ErrQuotaExceeded       = errors.New("monthly generation quota exceeded")
	ErrLedgerUnavailable   = errors.New("usage ledger unavailable")
	ErrProviderUnavailable = errors.New("caption provider unavailable")
	ErrGenerationFailed    = errors.New("caption generation failed")
	ErrGenerationBusy      = errors.New("a generation is already in progress")
	ErrUnknownPlan         = errors.New("unknown subscription plan")
)
