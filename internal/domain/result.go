package domain

import "errors"

// ErrUnknownCaller means the claimed admin email resolved to no user.
var ErrUnknownCaller = errors.New("unknown caller")

// ErrForbiddenCaller means the caller resolved but its account is not
// in valid standing.
var ErrForbiddenCaller = errors.New("forbidden caller")

type SyncStatus int

const (
	// SyncRejected is the silent rejection for unknown or forbidden
	// callers. No mutation has occurred.
	SyncRejected SyncStatus = iota
	// SyncAccepted acknowledges a persisted article.
	SyncAccepted
	// SyncSoftFailure carries a failure message for the caller; the
	// client registry upsert has still run.
	SyncSoftFailure
)

// SyncResult is the total outcome of one sync attempt.
type SyncResult struct {
	Status  SyncStatus
	Message string
}

func Accepted() SyncResult {
	return SyncResult{Status: SyncAccepted}
}

func Rejected() SyncResult {
	return SyncResult{Status: SyncRejected}
}

func SoftFailure(msg string) SyncResult {
	return SyncResult{Status: SyncSoftFailure, Message: msg}
}
