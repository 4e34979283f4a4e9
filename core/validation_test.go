package core

import (
	"errors"
	"math"
	"testing"
)

func TestValidatePriors(t *testing.T) {
	tests := []struct {
		name    string
		priors  []float64
		wantErr error
	}{
		{name: "cape python priors", priors: []float64{0.2, 0.5, 0.3}},
		{name: "single certain area", priors: []float64{1}},
		{name: "zero prior allowed", priors: []float64{0, 0.4, 0.6}},
		{name: "tiny rounding error", priors: []float64{0.1, 0.2, 0.7 + 1e-12}},
		{name: "empty", priors: nil, wantErr: ErrNoAreas},
		{name: "negative", priors: []float64{-0.1, 0.6, 0.5}, wantErr: ErrInvalidPrior},
		{name: "greater than one", priors: []float64{1.2, -0.2}, wantErr: ErrInvalidPrior},
		{name: "NaN", priors: []float64{math.NaN(), 1}, wantErr: ErrInvalidPrior},
		{name: "does not sum to one", priors: []float64{0.2, 0.5, 0.2}, wantErr: ErrPriorsSum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePriors(tt.priors)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePriors() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePriors() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("ValidatePriors() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestValidateEffectivenessRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		wantErr  bool
	}{
		{"default range", 0.2, 0.9, false},
		{"full range", 0, 1, false},
		{"fixed value", 0.5, 0.5, false},
		{"inverted", 0.9, 0.2, true},
		{"below zero", -0.1, 0.5, true},
		{"above one", 0.2, 1.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEffectivenessRange(tt.min, tt.max)
			if tt.wantErr != (err != nil) {
				t.Errorf("ValidateEffectivenessRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEffectivenessRange) {
				t.Errorf("ValidateEffectivenessRange() error = %v, want ErrInvalidEffectivenessRange", err)
			}
		})
	}
}

func TestValidateEffectiveness(t *testing.T) {
	for _, e := range []float64{0, 0.2, 0.9, 1} {
		if err := ValidateEffectiveness(e); err != nil {
			t.Errorf("ValidateEffectiveness(%v) error = %v", e, err)
		}
	}
	for _, e := range []float64{-0.01, 1.01, math.NaN()} {
		if err := ValidateEffectiveness(e); !errors.Is(err, ErrInvalidEffectiveness) {
			t.Errorf("ValidateEffectiveness(%v) error = %v, want ErrInvalidEffectiveness", e, err)
		}
	}
}

func TestValidateAreaID(t *testing.T) {
	tests := []struct {
		id      AreaID
		wantErr bool
	}{
		{1, false},
		{3, false},
		{0, true},
		{4, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateAreaID(tt.id, 3)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArea) {
				t.Errorf("ValidateAreaID(%d) error = %v, want ErrInvalidArea", tt.id, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateAreaID(%d) error = %v", tt.id, err)
		}
	}
}
