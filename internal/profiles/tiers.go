package profiles

// Tier is a desired talent level for generated skills. TierRandom samples
// from the unshifted position distributions.
type Tier string

const (
	TierElite   Tier = "elite"
	TierStarter Tier = "starter"
	TierBackup  Tier = "backup"
	TierFringe  Tier = "fringe"
	TierRandom  Tier = "random"
)

// TierModifiers shifts every skill's declared mean before clamping to
// [1,100].
var TierModifiers = map[Tier]float64{
	TierElite:   25,
	TierStarter: 12,
	TierBackup:  0,
	TierFringe:  -12,
	TierRandom:  0,
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := TierModifiers[t]
	return ok
}

// TierMix is a weighted choice over concrete tiers. Weights sum to 1.
type TierMix struct {
	Tiers   []Tier
	Weights []float64
}

// Population-shaping mixes for the batch builders: the first player at a
// position draws from StarterMix, the rest from BackupMix, draft-class
// prospects from DraftClassMix.
var (
	StarterMix = TierMix{
		Tiers:   []Tier{TierElite, TierStarter, TierBackup, TierFringe},
		Weights: []float64{0.15, 0.55, 0.25, 0.05},
	}
	BackupMix = TierMix{
		Tiers:   []Tier{TierElite, TierStarter, TierBackup, TierFringe},
		Weights: []float64{0.02, 0.18, 0.55, 0.25},
	}
	DraftClassMix = TierMix{
		Tiers:   []Tier{TierElite, TierStarter, TierBackup, TierFringe},
		Weights: []float64{0.05, 0.20, 0.45, 0.30},
	}
)

// AgeContext selects which age band a generated player is drawn from.
type AgeContext string

const (
	AgeDraftEligible AgeContext = "draft_eligible"
	AgeVeteran       AgeContext = "veteran"
	AgeFullCareer    AgeContext = "full_career"
)

// AgeRanges gives the inclusive age band per context.
var AgeRanges = map[AgeContext][2]int{
	AgeDraftEligible: {21, 23},
	AgeVeteran:       {24, 33},
	AgeFullCareer:    {21, 35},
}

// ItTier is one band of the intangible-factor mixture. The bands partition
// [1,100] exactly; weights sum to 1 and are deliberately mid-heavy.
type ItTier struct {
	Min    int
	Max    int
	Weight float64
}

// ItTiers is ordered top band first.
var ItTiers = []ItTier{
	{Min: 90, Max: 100, Weight: 0.02},
	{Min: 80, Max: 89, Weight: 0.08},
	{Min: 65, Max: 79, Weight: 0.20},
	{Min: 36, Max: 64, Weight: 0.40},
	{Min: 21, Max: 35, Weight: 0.20},
	{Min: 1, Max: 20, Weight: 0.10},
}

// DraftBump maps a projected draft slot to the chance of an intangible
// bump: scouts rate early picks, and early picks correlate with the trait.
type DraftBump struct {
	MaxPick int
	Chance  float64
}

// DraftBumps is ordered by MaxPick ascending; the first entry whose MaxPick
// is at or above the projected pick applies.
var DraftBumps = []DraftBump{
	{MaxPick: 10, Chance: 0.50},
	{MaxPick: 32, Chance: 0.35},
	{MaxPick: 64, Chance: 0.25},
	{MaxPick: 105, Chance: 0.15},
	{MaxPick: 160, Chance: 0.08},
}

// DraftBumpFloor is the bump chance for picks beyond the table.
const DraftBumpFloor = 0.03

// TierDraftPickProxy maps a requested talent tier to a presumed draft slot
// for intangible-factor biasing when a real projection is unavailable.
var TierDraftPickProxy = map[Tier]int{
	TierElite:   8,
	TierStarter: 45,
	TierBackup:  140,
	TierFringe:  230,
}
