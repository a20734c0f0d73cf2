package logic

import (
	"testing"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

func TestTraitGeneration(t *testing.T) {
	svc := NewTraitService()
	src := sampling.NewSource(149)
	for i := 0; i < 300; i++ {
		ts := svc.Generate(src, profiles.RB)
		if len(ts.Positive) < 1 || len(ts.Positive) > 3 {
			t.Fatalf("positive trait count %d outside [1,3]", len(ts.Positive))
		}
		if len(ts.Negative) > 2 {
			t.Fatalf("negative trait count %d over 2", len(ts.Negative))
		}

		owned := map[string]bool{}
		for _, tr := range ts.Positive {
			if owned[tr] {
				t.Fatalf("duplicate trait %q", tr)
			}
			owned[tr] = true
		}
		for _, tr := range ts.Negative {
			if owned[tr] {
				t.Fatalf("duplicate trait %q", tr)
			}
			owned[tr] = true
		}
		for _, tr := range ts.RevealedToUser {
			if !owned[tr] {
				t.Fatalf("revealed trait %q not owned", tr)
			}
		}
		if len(ts.RevealedToUser) > len(ts.Positive)+len(ts.Negative) {
			t.Fatal("revealed more traits than exist")
		}
	}
}

func TestConsistencySeededByItFactor(t *testing.T) {
	svc := NewConsistencyService()
	src := sampling.NewSource(151)

	avgScore := func(it int) float64 {
		sum := 0
		n := 2000
		for i := 0; i < n; i++ {
			sum += svc.Generate(src, profiles.MLB, models.ItFactor{Value: it}).Score
		}
		return float64(sum) / float64(n)
	}

	if high, low := avgScore(95), avgScore(10); high <= low {
		t.Errorf("it factor 95 average consistency %v should exceed it factor 10 average %v", high, low)
	}
}

func TestConsistencyStreakFields(t *testing.T) {
	svc := NewConsistencyService()
	src := sampling.NewSource(157)
	for i := 0; i < 500; i++ {
		cp := svc.Generate(src, profiles.CB, models.ItFactor{Value: src.IntBetween(1, 100)})
		if cp.Tier == "" {
			t.Fatal("missing tier")
		}
		if cp.Score < 1 || cp.Score > 100 {
			t.Fatalf("score %d outside [1,100]", cp.Score)
		}
		if cp.CurrentStreak == "" && cp.StreakGamesRemaining != 0 {
			t.Fatalf("streak games %d without a streak", cp.StreakGamesRemaining)
		}
		if cp.CurrentStreak != "" && (cp.StreakGamesRemaining < 1 || cp.StreakGamesRemaining > 4) {
			t.Fatalf("streak games %d outside [1,4]", cp.StreakGamesRemaining)
		}
	}
}

func TestNamesNonEmpty(t *testing.T) {
	svc := NewNameService()
	src := sampling.NewSource(163)
	for i := 0; i < 100; i++ {
		first, last := svc.Generate(src)
		if first == "" || last == "" {
			t.Fatal("empty name component")
		}
	}
}
