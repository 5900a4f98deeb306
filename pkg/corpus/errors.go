package corpus

import "errors"

// Sentinel errors for configuration and generation failures
var (
	ErrInvalidConfig  = errors.New("invalid corpus config")
	ErrUnknownProfile = errors.New("unknown profile kind")
	ErrNoRenderer     = errors.New("no renderer registered for profile")
	ErrWriteArtifact  = errors.New("failed to write artifact")
)
