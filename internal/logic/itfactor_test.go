package logic

import (
	"testing"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

func TestItFactorAlwaysInRange(t *testing.T) {
	svc := NewItFactorService()
	src := sampling.NewSource(61)
	for i := 0; i < 5000; i++ {
		f := svc.Generate(src, 0)
		if f.Value < 1 || f.Value > 100 {
			t.Fatalf("it factor %d outside [1,100]", f.Value)
		}
	}
}

func TestItFactorMixtureShape(t *testing.T) {
	svc := NewItFactorService()
	src := sampling.NewSource(67)

	n := 2000
	var top, middle, bottom int
	for i := 0; i < n; i++ {
		f := svc.Generate(src, 0)
		switch f.Tier() {
		case 0:
			top++
		case 3:
			middle++
		case len(profiles.ItTiers) - 1:
			bottom++
		}
	}

	if frac := float64(top) / float64(n); frac >= 0.08 {
		t.Errorf("top band proportion %v, want <0.08", frac)
	}
	if frac := float64(middle) / float64(n); frac <= 0.25 {
		t.Errorf("middle band proportion %v, want >0.25", frac)
	}
	if frac := float64(bottom) / float64(n); frac >= 0.20 {
		t.Errorf("bottom band proportion %v, want <0.20", frac)
	}
}

func TestEarlyDraftSlotLiftsAverage(t *testing.T) {
	svc := NewItFactorService()
	src := sampling.NewSource(71)

	avgFor := func(pick int) float64 {
		sum := 0
		n := 4000
		for i := 0; i < n; i++ {
			sum += svc.Generate(src, pick).Value
		}
		return float64(sum) / float64(n)
	}

	early, late := avgFor(5), avgFor(220)
	if early <= late {
		t.Errorf("top-five slot average %v should exceed late-round average %v", early, late)
	}
}

func TestDraftBiasNeverEscapesRange(t *testing.T) {
	svc := NewItFactorService()
	src := sampling.NewSource(73)
	for i := 0; i < 3000; i++ {
		f := svc.Generate(src, 1)
		if rep := models.ValidateItFactor(f); !rep.OK() {
			t.Fatalf("biased draw invalid: %+v", rep.Problems)
		}
	}
}

func TestBumpChanceTable(t *testing.T) {
	tests := []struct {
		pick int
		want float64
	}{
		{pick: 1, want: 0.50},
		{pick: 10, want: 0.50},
		{pick: 11, want: 0.35},
		{pick: 64, want: 0.25},
		{pick: 150, want: 0.08},
		{pick: 500, want: profiles.DraftBumpFloor},
	}
	for _, tt := range tests {
		if got := bumpChance(tt.pick); got != tt.want {
			t.Errorf("bumpChance(%d) = %v, want %v", tt.pick, got, tt.want)
		}
	}
}
