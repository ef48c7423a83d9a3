package models

import "errors"

// Submission and retrieval failures the API distinguishes for callers.
// ErrStorageWriteFailed means the file never made it to disk, while the two
// analysis errors mean the document is stored and can be resubmitted.
var (
	ErrNoFileProvided      = errors.New("no file provided")
	ErrStorageWriteFailed  = errors.New("failed to store uploaded document")
	ErrAnalysisTimeout     = errors.New("analysis engine did not respond in time")
	ErrAnalysisUnavailable = errors.New("analysis engine unavailable")
	ErrNotFound            = errors.New("record not found")
)
