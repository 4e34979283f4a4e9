package storage

import (
	"context"

	"github.com/poiesic/bayesearch/core"
)

// TrialRepository records the outcome of every simulated game in a campaign.
// Implementations must be thread-safe and support concurrent access.
type TrialRepository interface {
	// AddTrials stores one or more trial outcomes.
	// Returns ErrDuplicateKey if a (campaign, trial) pair is already stored,
	// in which case none of the outcomes are written.
	AddTrials(ctx context.Context, outcomes ...*core.TrialOutcome) error

	// GetTrials returns every outcome of a campaign ordered by trial number.
	GetTrials(ctx context.Context, campaign core.ID) ([]*core.TrialOutcome, error)

	// CountTrials returns the number of outcomes stored for a campaign.
	CountTrials(ctx context.Context, campaign core.ID) (int, error)

	// DeleteCampaign removes every outcome of a campaign.
	DeleteCampaign(ctx context.Context, campaign core.ID) error

	// Close releases resources held by the repository.
	Close() error
}
