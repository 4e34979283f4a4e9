package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/bayesearch/core"
	"github.com/poiesic/bayesearch/storage"
)

// TrialRepository implements storage.TrialRepository for BadgerDB.
type TrialRepository struct {
	backend *Backend
	owned   bool
}

var _ storage.TrialRepository = (*TrialRepository)(nil)

// NewTrialRepository creates a TrialRepository on an open backend.
// The caller keeps ownership of the backend.
func NewTrialRepository(backend *Backend) *TrialRepository {
	return &TrialRepository{
		backend: backend,
	}
}

// Close closes the backend if the repository opened it.
func (r *TrialRepository) Close() error {
	if !r.owned {
		return nil
	}
	return r.backend.Close()
}

// AddTrials stores one or more trial outcomes in a single transaction.
func (r *TrialRepository) AddTrials(ctx context.Context, outcomes ...*core.TrialOutcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, outcome := range outcomes {
			if outcome.Trial < 0 {
				return fmt.Errorf("%w: negative trial number %d", storage.ErrInvalidQuery, outcome.Trial)
			}

			key := makeTrialKey(outcome.Campaign, outcome.Trial)
			_, err := tx.Get(key)
			if err == nil {
				return fmt.Errorf("%w: campaign %d trial %d", storage.ErrDuplicateKey, outcome.Campaign, outcome.Trial)
			}
			if err != badger.ErrKeyNotFound {
				return err
			}

			if err := tx.Set(key, storage.MarshalTrialOutcome(outcome)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetTrials returns every outcome of a campaign ordered by trial number.
func (r *TrialRepository) GetTrials(ctx context.Context, campaign core.ID) ([]*core.TrialOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var outcomes []*core.TrialOutcome
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeCampaignPrefix(campaign)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				outcome, err := storage.UnmarshalTrialOutcome(val)
				if err != nil {
					return err
				}
				outcomes = append(outcomes, outcome)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

// CountTrials returns the number of outcomes stored for a campaign.
func (r *TrialRepository) CountTrials(ctx context.Context, campaign core.ID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		count = len(keysWithPrefix(tx, makeCampaignPrefix(campaign)))
		return nil
	}, false)
	return count, err
}

// DeleteCampaign removes every outcome of a campaign.
func (r *TrialRepository) DeleteCampaign(ctx context.Context, campaign core.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		keys := keysWithPrefix(tx, makeCampaignPrefix(campaign))
		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		r.backend.logger.Debug("campaign deleted", "campaign", campaign, "trials", len(keys))
		return tx.Commit()
	}, true)
}
