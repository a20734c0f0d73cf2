package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gridironforge/roster-api/internal/profiles"
)

// SkillRange is the scouted band shown in place of a true value. The type
// deliberately has no field capable of holding ground truth, so leaking a
// true value through a projection is a compile-time impossibility, not a
// naming convention.
type SkillRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PlayerViewModel is the sole client-safe representation of a player.
// It is derived on demand from a Player and is disposable.
type PlayerViewModel struct {
	ID         uuid.UUID             `json:"id"`
	Name       string                `json:"name"`
	Position   profiles.Position     `json:"position"`
	Age        int                   `json:"age"`
	Experience int                   `json:"experience"`

	Physical PhysicalAttributes    `json:"physical"`
	Skills   map[string]SkillRange `json:"skills"`

	KnownTraits []string `json:"knownTraits"`

	SchemeSummary string `json:"schemeSummary"`
	RoleSummary   string `json:"roleSummary"`
	InjuryDisplay string `json:"injuryDisplay"`

	DraftYear  int `json:"draftYear"`
	DraftRound int `json:"draftRound"`
	DraftPick  int `json:"draftPick"`
}

// forbiddenViewSubstrings are the markers of hidden state. A serialized
// view model containing any of them has crossed the privacy boundary.
var forbiddenViewSubstrings = []string{
	"trueValue",
	"itFactor",
	"consistency",
	"roleEffectiveness",
	"schemeFits",
	"revealedToUser",
	"currentStreak",
}

// CheckViewModelPrivacy scans a serialized projection for hidden-state
// markers. It is a regression guard, not the privacy mechanism itself: the
// mechanism is that PlayerViewModel structurally cannot hold the fields.
func CheckViewModelPrivacy(serialized []byte) bool {
	s := string(serialized)
	for _, forbidden := range forbiddenViewSubstrings {
		if strings.Contains(s, forbidden) {
			return false
		}
	}
	return true
}

// PrivacyViolations returns which markers a serialized projection leaked,
// for test diagnostics.
func PrivacyViolations(serialized []byte) []string {
	s := string(serialized)
	var found []string
	for _, forbidden := range forbiddenViewSubstrings {
		if strings.Contains(s, forbidden) {
			found = append(found, forbidden)
		}
	}
	return found
}
