// Package models defines the full-fidelity player entity, its restricted
// view projection, and the validation helpers over both. The Player struct
// is engine-internal: it must never be serialized onto a client-facing
// channel. PlayerViewModel is the only client-safe representation.
package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gridironforge/roster-api/internal/profiles"
)

// PhysicalAttributes are the always-visible combine measurements. Every
// value is within its published range by construction.
type PhysicalAttributes struct {
	Height       int     `json:"height"`        // inches
	Weight       int     `json:"weight"`        // pounds
	ArmLength    float64 `json:"armLength"`     // inches, 1 decimal
	HandSize     float64 `json:"handSize"`      // inches, 1 decimal
	Wingspan     float64 `json:"wingspan"`      // inches, 1 decimal, derived from height
	Speed        float64 `json:"speed"`         // forty time in seconds, 2 decimals
	Acceleration int     `json:"acceleration"`  // 40-99 rating
	Agility      int     `json:"agility"`       // 40-99 rating
	Strength     int     `json:"strength"`      // 40-99 rating
	VerticalJump int     `json:"verticalJump"`  // inches
}

// SkillValue carries one skill's ground truth and the scouted band around
// it. TrueValue is fixed at creation; at maturity the band collapses onto
// it.
type SkillValue struct {
	TrueValue    int `json:"trueValue"`
	PerceivedMin int `json:"perceivedMin"`
	PerceivedMax int `json:"perceivedMax"`
	MaturityAge  int `json:"maturityAge"`
}

// ItFactor is the hidden intangible scalar. It never appears in any
// external-facing structure.
type ItFactor struct {
	Value int `json:"itFactor"`
}

// NewItFactor builds an ItFactor from a caller-supplied literal. Unlike the
// sampling paths, which clamp, an out-of-range literal is programmer error
// and fails fast.
func NewItFactor(value int) (ItFactor, error) {
	if value < 1 || value > 100 {
		return ItFactor{}, fmt.Errorf("it factor literal %d outside [1,100]", value)
	}
	return ItFactor{Value: value}, nil
}

// Tier returns the index of the mixture band the value falls in (0 = top).
func (f ItFactor) Tier() int {
	for i, tier := range profiles.ItTiers {
		if f.Value >= tier.Min && f.Value <= tier.Max {
			return i
		}
	}
	return len(profiles.ItTiers) - 1
}

// RoleFit holds the role hierarchy placement. RoleEffectiveness is a hidden
// 1-100 score.
type RoleFit struct {
	Ceiling           profiles.Role `json:"ceiling"`
	CurrentRole       profiles.Role `json:"currentRole"`
	RoleEffectiveness int           `json:"roleEffectiveness"`
}

// FitLabel is a qualitative scheme-fit rating.
type FitLabel string

const (
	FitPerfect  FitLabel = "perfect"
	FitGood     FitLabel = "good"
	FitNeutral  FitLabel = "neutral"
	FitPoor     FitLabel = "poor"
	FitTerrible FitLabel = "terrible"
)

// SchemeFits maps every scheme name in the catalog to a label. Schemes on
// the wrong side of the ball for the player are forced to neutral.
type SchemeFits map[string]FitLabel

// TraitSet holds the hidden personality traits and the subset currently
// revealed to the user. The revealed list is the authority on visibility.
type TraitSet struct {
	Positive       []string `json:"positive"`
	Negative       []string `json:"negative"`
	RevealedToUser []string `json:"revealedToUser"`
}

// ConsistencyProfile is an externally-produced hidden record. Score is the
// 1-100 value the role-fit bonus derives from.
type ConsistencyProfile struct {
	Tier                 string `json:"consistencyTier"`
	Score                int    `json:"consistencyScore"`
	CurrentStreak        string `json:"currentStreak"`
	StreakGamesRemaining int    `json:"streakGamesRemaining"`
}

// InjuryStatus is the current health record.
type InjuryStatus struct {
	Status      string `json:"status"`
	WeeksOut    int    `json:"weeksOut"`
	Description string `json:"description"`
}

// Display renders the status for the view projection.
func (s InjuryStatus) Display() string {
	if s.WeeksOut <= 0 {
		return "Healthy"
	}
	if s.Description == "" {
		return fmt.Sprintf("Out %d weeks", s.WeeksOut)
	}
	return fmt.Sprintf("Out %d weeks (%s)", s.WeeksOut, s.Description)
}

// HealthyStatus is the default status for newly generated players.
func HealthyStatus() InjuryStatus {
	return InjuryStatus{Status: "healthy"}
}

// Player is the full-fidelity aggregate. It exclusively owns its
// sub-records; nothing here is shared across players.
type Player struct {
	ID         uuid.UUID         `json:"id"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Position   profiles.Position `json:"position"`
	Age        int               `json:"age"`
	Experience int               `json:"experience"` // seasons played

	DraftYear  int `json:"draftYear"`
	DraftRound int `json:"draftRound"` // 0 = undrafted
	DraftPick  int `json:"draftPick"`

	Physical    PhysicalAttributes    `json:"physical"`
	Skills      map[string]SkillValue `json:"skills"`
	It          ItFactor              `json:"it"`
	Traits      TraitSet              `json:"traits"`
	Consistency ConsistencyProfile    `json:"consistency"`
	Role        RoleFit               `json:"role"`
	SchemeFits  SchemeFits            `json:"schemeFits"`
	Injury      InjuryStatus          `json:"injury"`
}

// Name returns the display name.
func (p *Player) Name() string {
	return p.FirstName + " " + p.LastName
}

// AvgTrueSkill averages the ground-truth skill values.
func (p *Player) AvgTrueSkill() float64 {
	if len(p.Skills) == 0 {
		return 0
	}
	sum := 0
	for _, sv := range p.Skills {
		sum += sv.TrueValue
	}
	return float64(sum) / float64(len(p.Skills))
}
