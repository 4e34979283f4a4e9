package simulate

import (
	"fmt"
	"io"
	"time"

	"github.com/poiesic/bayesearch/core"
)

// Summary aggregates the outcomes of a campaign.
type Summary struct {
	Campaign     Campaign
	Trials       int
	Found        int
	FindsPerArea []int // index i counts finds in area i+1
	TotalRounds  int   // rounds played by games that found the target
	TotalSearch  int   // coordinates searched across all games
	Elapsed      time.Duration
}

// Summarize folds trial outcomes into a Summary for numAreas areas.
func Summarize(campaign Campaign, numAreas int, outcomes []*core.TrialOutcome) *Summary {
	s := &Summary{
		Campaign:     campaign,
		Trials:       len(outcomes),
		FindsPerArea: make([]int, numAreas),
	}
	for _, outcome := range outcomes {
		s.TotalSearch += outcome.Searched
		if !outcome.Found {
			continue
		}
		s.Found++
		s.TotalRounds += outcome.Rounds
		if idx := outcome.Area.Index(); idx >= 0 && idx < numAreas {
			s.FindsPerArea[idx]++
		}
	}
	return s
}

// FindRate returns the fraction of trials that found the target.
func (s *Summary) FindRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Found) / float64(s.Trials)
}

// MeanRounds returns the mean number of rounds needed by successful trials.
func (s *Summary) MeanRounds() float64 {
	if s.Found == 0 {
		return 0
	}
	return float64(s.TotalRounds) / float64(s.Found)
}

// MeanSearched returns the mean number of coordinates searched per trial.
func (s *Summary) MeanSearched() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.TotalSearch) / float64(s.Trials)
}

// WriteTo prints a human readable report.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	var written int64
	printf := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}

	if err := printf("Policy:        %s\n", s.Campaign.Policy); err != nil {
		return written, err
	}
	if err := printf("Trials:        %d (max %d rounds)\n", s.Trials, s.Campaign.MaxRounds); err != nil {
		return written, err
	}
	if err := printf("Found:         %d (%.1f%%)\n", s.Found, s.FindRate()*100); err != nil {
		return written, err
	}
	if err := printf("Mean rounds:   %.2f\n", s.MeanRounds()); err != nil {
		return written, err
	}
	if err := printf("Mean searched: %.1f\n", s.MeanSearched()); err != nil {
		return written, err
	}
	for i, finds := range s.FindsPerArea {
		if err := printf("Area %d finds:  %d\n", i+1, finds); err != nil {
			return written, err
		}
	}
	return written, nil
}
