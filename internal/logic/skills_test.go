package logic

import (
	"math"
	"testing"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

func TestRangeWidth(t *testing.T) {
	tests := []struct {
		name  string
		years int
		want  int
	}{
		{name: "at maturity", years: 0, want: 0},
		{name: "past maturity", years: -3, want: 0},
		{name: "one year out", years: 1, want: 3},
		{name: "four years out", years: 4, want: 12},
		{name: "capped", years: 6, want: 16},
		{name: "far past cap", years: 20, want: 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeWidth(tt.years); got != tt.want {
				t.Errorf("RangeWidth(%d) = %d, want %d", tt.years, got, tt.want)
			}
		})
	}
}

func TestPerceivedRangeFullReveal(t *testing.T) {
	src := sampling.NewSource(13)
	for _, v := range []int{1, 2, 37, 50, 99, 100} {
		min, max := PerceivedRange(src, v, 0)
		if min != v || max != v {
			t.Errorf("PerceivedRange(%d, 0) = [%d,%d], want collapsed on %d", v, min, max, v)
		}
	}
}

func TestPerceivedRangeCoversTrueValue(t *testing.T) {
	src := sampling.NewSource(17)
	hits := 0
	trials := 100
	for i := 0; i < trials; i++ {
		trueValue := src.IntBetween(20, 80)
		min, max := PerceivedRange(src, trueValue, 12)
		if min > max {
			t.Fatalf("inverted band [%d,%d]", min, max)
		}
		if trueValue >= min && trueValue <= max {
			hits++
		}
	}
	if hits <= trials*80/100 {
		t.Errorf("true value inside its band only %d/%d times, want >80%%", hits, trials)
	}
}

func TestPerceivedRangeStaysInBounds(t *testing.T) {
	src := sampling.NewSource(19)
	for i := 0; i < 5000; i++ {
		min, max := PerceivedRange(src, src.IntBetween(1, 100), 16)
		if min < 1 || max > 100 || min > max {
			t.Fatalf("bad band [%d,%d]", min, max)
		}
	}
}

func TestGenerateSkillsCoversPositionTable(t *testing.T) {
	svc := NewSkillService()
	src := sampling.NewSource(29)
	for _, pos := range profiles.AllPositions {
		skills := svc.Generate(src, pos, 25, profiles.TierRandom)
		defs := profiles.SkillsFor(pos)
		if len(skills) != len(defs) {
			t.Errorf("%s: generated %d skills, table declares %d", pos, len(skills), len(defs))
		}
		for _, def := range defs {
			sv, ok := skills[def.Name]
			if !ok {
				t.Errorf("%s: missing skill %q", pos, def.Name)
				continue
			}
			if rep := models.ValidateSkillValue(sv); !rep.OK() {
				t.Errorf("%s/%s invalid: %+v", pos, def.Name, rep.Problems)
			}
		}
	}
}

func TestMatureAgeCollapsesBands(t *testing.T) {
	svc := NewSkillService()
	src := sampling.NewSource(37)
	// 35 is past every maturity range in the tables
	skills := svc.Generate(src, profiles.QB, 35, profiles.TierRandom)
	for name, sv := range skills {
		if sv.PerceivedMin != sv.TrueValue || sv.PerceivedMax != sv.TrueValue {
			t.Errorf("%s: mature player band [%d,%d] not collapsed on %d",
				name, sv.PerceivedMin, sv.PerceivedMax, sv.TrueValue)
		}
	}
}

func TestYoungPlayersCarryWideBands(t *testing.T) {
	svc := NewSkillService()
	src := sampling.NewSource(43)
	wide := 0
	skills := svc.Generate(src, profiles.QB, 21, profiles.TierRandom)
	for _, sv := range skills {
		if sv.PerceivedMax-sv.PerceivedMin > 0 {
			wide++
		}
	}
	// QB maturity is 26-29, so a 21-year-old is at least 5 years out and
	// every band should be at (or clamped just under) the 16-point cap.
	if wide < len(skills)-1 {
		t.Errorf("only %d of %d rookie skills carry uncertainty", wide, len(skills))
	}
}

func TestEliteTierOutscoresFringe(t *testing.T) {
	svc := NewSkillService()
	src := sampling.NewSource(47)

	meanFor := func(tier profiles.Tier) float64 {
		sum, n := 0, 0
		for i := 0; i < 40; i++ {
			for _, sv := range svc.Generate(src, profiles.WR, 24, tier) {
				sum += sv.TrueValue
				n++
			}
		}
		return float64(sum) / float64(n)
	}

	elite, fringe := meanFor(profiles.TierElite), meanFor(profiles.TierFringe)
	if elite-fringe <= 20 {
		t.Errorf("elite mean %v exceeds fringe mean %v by %v, want >20", elite, fringe, elite-fringe)
	}
}

func TestCorrelationPullsSkillsTogether(t *testing.T) {
	svc := NewSkillService()
	src := sampling.NewSource(53)

	// route_running_mid blends toward route_running_short; over many
	// players the two should covary positively.
	n := 1500
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := 0; i < n; i++ {
		skills := svc.Generate(src, profiles.WR, 24, profiles.TierRandom)
		x := float64(skills["route_running_short"].TrueValue)
		y := float64(skills["route_running_mid"].TrueValue)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
		sumYY += y * y
	}
	fn := float64(n)
	cov := sumXY/fn - (sumX/fn)*(sumY/fn)
	varX := sumXX/fn - (sumX/fn)*(sumX/fn)
	varY := sumYY/fn - (sumY/fn)*(sumY/fn)
	if varX <= 0 || varY <= 0 {
		t.Fatal("degenerate variance")
	}
	corr := cov / (math.Sqrt(varX) * math.Sqrt(varY))
	if corr < 0.2 {
		t.Errorf("correlation between short and mid routes = %v, want clearly positive", corr)
	}
}
