package logic

import (
	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

// The collaborators in this file are deliberately simple: the generation
// core consumes them as opaque record producers. Name pools, trait pools
// and the consistency model can grow without touching the pipeline.

var firstNames = []string{
	"Marcus", "DeShawn", "Tyler", "Jalen", "Connor", "Malik", "Austin",
	"Darius", "Caleb", "Xavier", "Jordan", "Trent", "Isaiah", "Brock",
	"Cameron", "Devin", "Elijah", "Grant", "Hunter", "Javon", "Kendall",
	"Lamar", "Mason", "Noah", "Quentin", "Rashad", "Spencer", "Terrell",
	"Vince", "Zachary",
}

var lastNames = []string{
	"Johnson", "Williams", "Smith", "Brown", "Jackson", "Davis", "Harris",
	"Thompson", "Robinson", "Walker", "Carter", "Mitchell", "Turner",
	"Phillips", "Campbell", "Parker", "Evans", "Edwards", "Collins",
	"Stewart", "Sanders", "Bennett", "Wright", "Griffin", "Hayes",
	"Coleman", "Simmons", "Foster", "Bryant", "Washington",
}

type nameService struct{}

// NewNameService builds the lookup-table name generator.
func NewNameService() NameService {
	return &nameService{}
}

func (s *nameService) Generate(src *sampling.Source) (string, string) {
	first := firstNames[src.IntBetween(0, len(firstNames)-1)]
	last := lastNames[src.IntBetween(0, len(lastNames)-1)]
	return first, last
}

var positiveTraits = []string{
	"film_junkie", "locker_room_leader", "clutch_gene", "coachable",
	"high_motor", "team_first", "iron_sharpens_iron", "student_of_the_game",
}

var negativeTraits = []string{
	"injury_prone", "hot_head", "contract_driven", "practice_squad_effort",
	"media_magnet", "slow_study",
}

type traitService struct{}

// NewTraitService builds the hidden-trait generator.
func NewTraitService() TraitService {
	return &traitService{}
}

// Generate picks 1-3 positive and 0-2 negative traits and reveals a small
// random subset. Reveal timing over a career is out of scope here; the
// revealed list is the authority on what a view may show.
func (s *traitService) Generate(src *sampling.Source, pos profiles.Position) models.TraitSet {
	ts := models.TraitSet{
		Positive: pickDistinct(src, positiveTraits, src.IntBetween(1, 3)),
		Negative: pickDistinct(src, negativeTraits, src.IntBetween(0, 2)),
	}

	all := make([]string, 0, len(ts.Positive)+len(ts.Negative))
	all = append(all, ts.Positive...)
	all = append(all, ts.Negative...)
	revealCount := src.IntBetween(0, len(all))
	ts.RevealedToUser = pickDistinct(src, all, revealCount)
	return ts
}

func pickDistinct(src *sampling.Source, pool []string, n int) []string {
	if n <= 0 || len(pool) == 0 {
		return []string{}
	}
	if n > len(pool) {
		n = len(pool)
	}
	remaining := append([]string(nil), pool...)
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := src.IntBetween(0, len(remaining)-1)
		picked = append(picked, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picked
}

// Consistency tiers from steadiest to most volatile, with the 1-100 score
// band each maps to. The intangible factor seeds the draw: composed
// players run steadier.
var consistencyTiers = []struct {
	name string
	min  int
	max  int
}{
	{name: "metronome", min: 80, max: 95},
	{name: "steady", min: 62, max: 79},
	{name: "average", min: 45, max: 61},
	{name: "streaky", min: 30, max: 44},
	{name: "volatile", min: 15, max: 29},
}

type consistencyService struct{}

// NewConsistencyService builds the consistency profile generator.
func NewConsistencyService() ConsistencyService {
	return &consistencyService{}
}

func (s *consistencyService) Generate(src *sampling.Source, pos profiles.Position, it models.ItFactor) models.ConsistencyProfile {
	// bias the tier draw by the intangible factor
	base := src.IntBetween(1, 100)
	seeded := clampI((base+it.Value)/2+src.IntBetween(-10, 10), 1, 100)

	idx := len(consistencyTiers) - 1
	switch {
	case seeded >= 85:
		idx = 0
	case seeded >= 65:
		idx = 1
	case seeded >= 40:
		idx = 2
	case seeded >= 25:
		idx = 3
	}
	tier := consistencyTiers[idx]

	profile := models.ConsistencyProfile{
		Tier:  tier.name,
		Score: src.IntBetween(tier.min, tier.max),
	}
	// streakier profiles start mid-streak more often
	if idx >= 3 && src.Chance(0.4) {
		if src.Chance(0.5) {
			profile.CurrentStreak = "hot"
		} else {
			profile.CurrentStreak = "cold"
		}
		profile.StreakGamesRemaining = src.IntBetween(1, 4)
	}
	return profile
}
