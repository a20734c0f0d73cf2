package logic

import (
	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
)

// Wide-miss margins for scheme physical preferences: missing a preference
// by more than this costs points, a narrow miss is a wash.
const (
	speedWideMiss  = 0.30 // seconds over the forty-time ceiling
	ratingWideMiss = 10.0 // points under an agility/strength floor
)

// Fit label cut points on the 0-100 scheme score.
const (
	fitPerfectCut = 80
	fitGoodCut    = 65
	fitNeutralCut = 45
	fitPoorCut    = 30
)

// DeriveSchemeFits labels every scheme in the catalog for this player.
// Schemes on the wrong side of the ball are forced to neutral without
// being scored.
func (s *fitService) DeriveSchemeFits(pos profiles.Position, phys models.PhysicalAttributes, skills map[string]models.SkillValue) models.SchemeFits {
	side := profiles.SideOf(pos)
	fits := make(models.SchemeFits, len(profiles.Schemes))
	for _, scheme := range profiles.Schemes {
		if scheme.Side != side {
			fits[scheme.Name] = models.FitNeutral
			continue
		}
		fits[scheme.Name] = fitLabel(schemeScore(scheme, pos, phys, skills))
	}
	return fits
}

// schemeScore starts at 50, moves on the scheme's physical preferences and
// weighted skills, then rescales the deviation from 50 by how much the
// scheme emphasizes the position.
func schemeScore(scheme profiles.Scheme, pos profiles.Position, phys models.PhysicalAttributes, skills map[string]models.SkillValue) float64 {
	score := 50.0

	if scheme.SpeedCeiling > 0 {
		switch {
		case phys.Speed <= scheme.SpeedCeiling:
			score += 10
		case phys.Speed > scheme.SpeedCeiling+speedWideMiss:
			score -= 10
		}
	}
	if scheme.MinAgility > 0 {
		switch {
		case float64(phys.Agility) >= scheme.MinAgility:
			score += 10
		case float64(phys.Agility) < scheme.MinAgility-ratingWideMiss:
			score -= 10
		}
	}
	if scheme.MinStrength > 0 {
		switch {
		case float64(phys.Strength) >= scheme.MinStrength:
			score += 10
		case float64(phys.Strength) < scheme.MinStrength-ratingWideMiss:
			score -= 10
		}
	}

	for skill, importance := range scheme.SkillWeights {
		sv, ok := skills[skill]
		if !ok {
			continue
		}
		weight := float64(importance) / 10
		switch {
		case sv.TrueValue >= 70:
			score += 8 * weight
		case sv.TrueValue >= 55:
			score += 3 * weight
		case sv.TrueValue < 40:
			score -= 8 * weight
		}
	}

	imp := float64(scheme.ImportanceFor(pos)) / 10
	score = 50 + (score-50)*imp

	return clampF(score, 0, 100)
}

func fitLabel(score float64) models.FitLabel {
	switch {
	case score >= fitPerfectCut:
		return models.FitPerfect
	case score >= fitGoodCut:
		return models.FitGood
	case score >= fitNeutralCut:
		return models.FitNeutral
	case score >= fitPoorCut:
		return models.FitPoor
	default:
		return models.FitTerrible
	}
}
