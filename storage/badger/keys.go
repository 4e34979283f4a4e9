package badger

import (
	"encoding/binary"

	"github.com/poiesic/bayesearch/core"
)

// Key prefixes for different data types
const (
	trialPrefix = "trial:"
)

// makeCampaignPrefix generates the key prefix shared by a campaign's trials.
// Format: prefix:campaign
func makeCampaignPrefix(campaign core.ID) []byte {
	buf := make([]byte, len(trialPrefix)+8)
	offset := copy(buf, trialPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(campaign))
	return buf
}

// makeTrialKey generates a composite key for one trial of a campaign.
// Format: prefix:campaign:trial
func makeTrialKey(campaign core.ID, trial int) []byte {
	buf := make([]byte, len(trialPrefix)+16)
	offset := copy(buf, trialPrefix)
	// Write in BigEndian order so lexicographic sort follows trial order
	binary.BigEndian.PutUint64(buf[offset:], uint64(campaign))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(trial))
	return buf
}
