package logic

import (
	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

type itFactorService struct{}

// NewItFactorService builds the intangible factor generator.
func NewItFactorService() ItFactorService {
	return &itFactorService{}
}

// Generate samples the hidden scalar from the six-band mixture, then
// uniformly within the chosen band. A projected draft slot (pick > 0) adds
// a chance of a small bump: an early slot correlates with the trait but
// never guarantees it.
func (s *itFactorService) Generate(src *sampling.Source, projectedPick int) models.ItFactor {
	weights := make([]float64, len(profiles.ItTiers))
	for i, tier := range profiles.ItTiers {
		weights[i] = tier.Weight
	}
	band := profiles.ItTiers[src.WeightedIndex(weights)]
	value := src.IntBetween(band.Min, band.Max)

	if projectedPick > 0 && src.Chance(bumpChance(projectedPick)) {
		value += src.IntBetween(5, 15)
		if value > 100 {
			value = 100
		}
	}

	return models.ItFactor{Value: clampI(value, 1, 100)}
}

func bumpChance(pick int) float64 {
	for _, b := range profiles.DraftBumps {
		if pick <= b.MaxPick {
			return b.Chance
		}
	}
	return profiles.DraftBumpFloor
}
