package logic

import (
	"math"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

// currentRoleWeights picks the occupied role at distance 0, 1 or 2 below
// the ceiling.
var currentRoleWeights = []float64{0.3, 0.4, 0.3}

type fitService struct{}

// NewFitService builds the role and scheme fit deriver.
func NewFitService() FitService {
	return &fitService{}
}

// DeriveRole computes the role ceiling from average true skill adjusted by
// the intangible and consistency bonuses, drops the occupied role up to two
// ranks below it, and scores how effective the player is in that role.
func (s *fitService) DeriveRole(src *sampling.Source, skills map[string]models.SkillValue, it models.ItFactor, consistency models.ConsistencyProfile) models.RoleFit {
	avg := avgTrue(skills)
	itBonus := float64(it.Value-50) / 10
	consBonus := float64(consistency.Score-50) / 20
	effective := clampF(avg+itBonus+consBonus, 1, 100)

	ceilIdx := len(profiles.RoleHierarchy) - 1
	for i, rt := range profiles.RoleHierarchy {
		if effective >= rt.MinSkill {
			ceilIdx = i
			break
		}
	}

	maxDrop := len(profiles.RoleHierarchy) - 1 - ceilIdx
	if maxDrop > 2 {
		maxDrop = 2
	}
	drop := src.WeightedIndex(currentRoleWeights[:maxDrop+1])
	curIdx := ceilIdx + drop

	center := profiles.ThresholdCenter(curIdx)
	effectiveness := 75 - math.Abs(avg-center) + 2*itBonus + 2*consBonus + src.FloatBetween(-10, 10)

	return models.RoleFit{
		Ceiling:           profiles.RoleHierarchy[ceilIdx].Role,
		CurrentRole:       profiles.RoleHierarchy[curIdx].Role,
		RoleEffectiveness: clampI(int(math.Round(effectiveness)), 1, 100),
	}
}

func avgTrue(skills map[string]models.SkillValue) float64 {
	if len(skills) == 0 {
		return 0
	}
	sum := 0
	for _, sv := range skills {
		sum += sv.TrueValue
	}
	return float64(sum) / float64(len(skills))
}
