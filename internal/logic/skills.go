package logic

import (
	"math"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

// Fallback distribution for skill names the position table does not
// declare. Out-of-table lookups degrade instead of failing.
const (
	fallbackSkillMean   = 50.0
	fallbackSkillStdDev = 15.0
)

// maxRangeWidth caps how wide a scouted band can get, and widthPerYear is
// how much one year short of maturity adds to it.
const (
	maxRangeWidth = 16
	widthPerYear  = 3
)

type skillService struct{}

// NewSkillService builds the technical skill generator.
func NewSkillService() SkillService {
	return &skillService{}
}

// Generate samples the full skill map for pos. Skills are processed in
// declaration order; a skill's mean is blended toward the average of its
// already-generated correlated skills, so correlation is directional and
// the table order is load-bearing.
func (s *skillService) Generate(src *sampling.Source, pos profiles.Position, age int, tier profiles.Tier) map[string]models.SkillValue {
	defs := profiles.SkillsFor(pos)
	maturity := profiles.MaturityFor(pos)
	maturityAge := src.IntBetween(maturity.Min, maturity.Max)
	tierMod := profiles.TierModifiers[tier]

	skills := make(map[string]models.SkillValue, len(defs))
	for _, def := range defs {
		mean, stdDev := def.Mean, def.StdDev
		if stdDev == 0 {
			mean, stdDev = fallbackSkillMean, fallbackSkillStdDev
		}
		mean = clampF(mean+tierMod, 1, 100)

		if avg, ok := correlatedAverage(def.CorrelatedWith, skills); ok {
			mean = 0.5*mean + 0.5*avg
		}

		trueValue := int(math.Round(src.BoundedNormal(mean, stdDev, 1, 100)))
		min, max := PerceivedRange(src, trueValue, RangeWidth(maturityAge-age))

		skills[def.Name] = models.SkillValue{
			TrueValue:    trueValue,
			PerceivedMin: min,
			PerceivedMax: max,
			MaturityAge:  maturityAge,
		}
	}
	return skills
}

// correlatedAverage averages the true values of whichever named skills
// exist in generated. Names not yet generated are silently ignored.
func correlatedAverage(names []string, generated map[string]models.SkillValue) (float64, bool) {
	sum, n := 0, 0
	for _, name := range names {
		if sv, ok := generated[name]; ok {
			sum += sv.TrueValue
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// RangeWidth converts years until maturity into the width of the scouted
// band: zero at maturity, widening by 3 per immature year, capped at 16.
// Negative input (already past maturity) is zero.
func RangeWidth(yearsUntilMaturity int) int {
	if yearsUntilMaturity <= 0 {
		return 0
	}
	w := yearsUntilMaturity * widthPerYear
	if w > maxRangeWidth {
		return maxRangeWidth
	}
	return w
}

// PerceivedRange builds the scouted band around trueValue. Width zero is a
// full reveal. Otherwise the band's center drifts off the true value by a
// scouting error proportional to the width, and the clamped bounds are
// swapped if clamping inverted them. Near 1 and 100 the band can come out
// asymmetric or degenerate; that narrowing at the extremes is intended.
func PerceivedRange(src *sampling.Source, trueValue, width int) (min, max int) {
	if width <= 0 {
		return trueValue, trueValue
	}
	center := float64(trueValue) + src.Normal(0, float64(width)*0.1)
	half := float64(width) / 2
	min = clampI(int(math.Round(center-half)), 1, 100)
	max = clampI(int(math.Round(center+half)), 1, 100)
	if min > max {
		min, max = max, min
	}
	return min, max
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
