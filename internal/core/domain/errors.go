package domain

import "errors"

// ============================================================================
// Batch Errors
// ============================================================================

// Validation errors
var (
	ErrInvalidCount   = errors.New("total image count must be at least 1")
	ErrNoThemes       = errors.New("volume has no themes")
	ErrUnknownVolume  = errors.New("unknown collection volume")
	ErrInvalidSampler = errors.New("sampling parameters must be positive")
)

// ============================================================================
// Generation Errors
// ============================================================================

var (
	ErrUpstreamStatus      = errors.New("txt2img endpoint returned non-success status")
	ErrNoImages            = errors.New("txt2img response contains no images")
	ErrInvalidImagePayload = errors.New("txt2img image payload is not valid base64")
)
