package simulate

import "errors"

var (
	// ErrRepositoryRequired is returned when a trial repository is not provided.
	ErrRepositoryRequired = errors.New("trial repository required")

	// ErrUnknownPolicy is returned for a policy name that is not recognized.
	ErrUnknownPolicy = errors.New("unknown policy")

	// ErrInvalidCampaign is returned for non-positive trial or round counts.
	ErrInvalidCampaign = errors.New("invalid campaign")
)
