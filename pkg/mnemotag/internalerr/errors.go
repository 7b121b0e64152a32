package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInsufficientData = errors.New("insufficient training data")
	ErrNotTrained       = errors.New("model not trained")
	ErrModelNotFound    = errors.New("model file not found")
	ErrModelCorrupt     = errors.New("model file corrupt")
	ErrInvalidTaxonomy  = errors.New("invalid taxonomy")
)
