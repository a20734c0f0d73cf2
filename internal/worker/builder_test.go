package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

func newTestBuilder() *Builder {
	return NewBuilder(BuilderConfig{Workers: 4, Logger: zap.NewNop()})
}

func TestBuildRosterComposition(t *testing.T) {
	b := newTestBuilder()
	roster, err := b.BuildRoster(context.Background(), sampling.NewSource(167), "test-team")
	if err != nil {
		t.Fatal(err)
	}
	if roster.TeamID != "test-team" {
		t.Errorf("team id %q", roster.TeamID)
	}
	if len(roster.Players) != profiles.RosterSize {
		t.Fatalf("roster has %d players, want %d", len(roster.Players), profiles.RosterSize)
	}

	counts := map[profiles.Position]int{}
	for _, p := range roster.Players {
		counts[p.Position]++
		if rep := models.ValidatePlayer(p); !rep.OK() {
			t.Fatalf("player %s invalid: %+v", p.ID, rep.Problems)
		}
	}
	for pos, want := range profiles.RosterComposition {
		if counts[pos] != want {
			t.Errorf("position %s has %d players, want %d", pos, counts[pos], want)
		}
	}
	if counts[profiles.QB] != 3 || counts[profiles.K] != 1 || counts[profiles.P] != 1 {
		t.Errorf("headline counts off: QB=%d K=%d P=%d", counts[profiles.QB], counts[profiles.K], counts[profiles.P])
	}
}

func TestBuildDraftClass(t *testing.T) {
	b := newTestBuilder()
	class, err := b.BuildDraftClass(context.Background(), sampling.NewSource(173), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(class) != DefaultDraftClassSize {
		t.Fatalf("class size %d, want default %d", len(class), DefaultDraftClassSize)
	}
	for _, p := range class {
		if p.Experience != 0 {
			t.Fatalf("prospect %s has %d seasons of experience", p.ID, p.Experience)
		}
		if p.DraftRound != 0 {
			t.Fatalf("prospect %s already drafted", p.ID)
		}
	}
}

func TestBuildDraftClassCustomSize(t *testing.T) {
	b := newTestBuilder()
	class, err := b.BuildDraftClass(context.Background(), sampling.NewSource(179), 40)
	if err != nil {
		t.Fatal(err)
	}
	if len(class) != 40 {
		t.Fatalf("class size %d, want 40", len(class))
	}
}

func TestBuildLeague(t *testing.T) {
	b := newTestBuilder()
	rosters, err := b.BuildLeague(context.Background(), sampling.NewSource(181), 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(rosters) != 4 {
		t.Fatalf("league has %d rosters, want 4", len(rosters))
	}
	seen := map[string]bool{}
	for _, r := range rosters {
		if seen[r.TeamID] {
			t.Errorf("duplicate team id %q", r.TeamID)
		}
		seen[r.TeamID] = true
		if len(r.Players) != profiles.RosterSize {
			t.Errorf("team %s roster size %d", r.TeamID, len(r.Players))
		}
	}
}

func TestBatchDeterministicPerSeed(t *testing.T) {
	b := newTestBuilder()

	first, err := b.BuildRoster(context.Background(), sampling.NewSource(997), "a")
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.BuildRoster(context.Background(), sampling.NewSource(997), "a")
	if err != nil {
		t.Fatal(err)
	}

	for i := range first.Players {
		fp, sp := first.Players[i], second.Players[i]
		if fp.Name() != sp.Name() || fp.Position != sp.Position || fp.It.Value != sp.It.Value {
			t.Fatalf("slot %d diverged between identical seeds: %s/%s vs %s/%s",
				i, fp.Position, fp.Name(), sp.Position, sp.Name())
		}
		if fp.Physical != sp.Physical {
			t.Fatalf("slot %d physicals diverged", i)
		}
	}
}

func TestRosterPlayersAreIndependent(t *testing.T) {
	b := newTestBuilder()
	roster, err := b.BuildRoster(context.Background(), sampling.NewSource(191), "x")
	if err != nil {
		t.Fatal(err)
	}
	ids := map[string]bool{}
	for _, p := range roster.Players {
		if ids[p.ID.String()] {
			t.Fatalf("duplicate player id %s", p.ID)
		}
		ids[p.ID.String()] = true
	}
}

func TestCancelledContextStopsBatch(t *testing.T) {
	b := newTestBuilder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.BuildDraftClass(ctx, sampling.NewSource(193), 50); err == nil {
		t.Error("cancelled context should abort the batch")
	}
}
