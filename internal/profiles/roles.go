package profiles

// Role is a rank in the fixed role hierarchy, best first.
type Role string

const (
	RoleSuperstar  Role = "superstar"
	RoleStar       Role = "star"
	RoleStarter    Role = "starter"
	RoleRotational Role = "rotational"
	RoleBackup     Role = "backup"
	RoleFringe     Role = "fringe"
)

// RoleThreshold binds a role to the minimum effective skill that reaches it
// and to the draft rounds a player with that ceiling plausibly went in.
// DraftRoundMax 0 on the low end means undrafted is possible.
type RoleThreshold struct {
	Role          Role
	MinSkill      float64
	DraftRoundMin int
	DraftRoundMax int
}

// RoleHierarchy is ordered from highest ceiling to lowest. The ceiling walk
// returns the first entry whose MinSkill is at or below the player's
// effective skill, defaulting to the last entry.
var RoleHierarchy = []RoleThreshold{
	{Role: RoleSuperstar, MinSkill: 88, DraftRoundMin: 1, DraftRoundMax: 1},
	{Role: RoleStar, MinSkill: 78, DraftRoundMin: 1, DraftRoundMax: 2},
	{Role: RoleStarter, MinSkill: 68, DraftRoundMin: 2, DraftRoundMax: 4},
	{Role: RoleRotational, MinSkill: 58, DraftRoundMin: 4, DraftRoundMax: 6},
	{Role: RoleBackup, MinSkill: 48, DraftRoundMin: 6, DraftRoundMax: 7},
	{Role: RoleFringe, MinSkill: 0, DraftRoundMin: 0, DraftRoundMax: 7},
}

// RoleIndex returns the position of role in the hierarchy, or the last
// index for unknown roles.
func RoleIndex(role Role) int {
	for i, rt := range RoleHierarchy {
		if rt.Role == role {
			return i
		}
	}
	return len(RoleHierarchy) - 1
}

// ThresholdCenter returns the midpoint of the effective-skill band a role
// occupies, used by the effectiveness formula.
func ThresholdCenter(idx int) float64 {
	if idx < 0 || idx >= len(RoleHierarchy) {
		idx = len(RoleHierarchy) - 1
	}
	low := RoleHierarchy[idx].MinSkill
	if idx == 0 {
		return (low + 100) / 2
	}
	return (low + RoleHierarchy[idx-1].MinSkill) / 2
}

// PicksPerRound is the number of selections in one draft round.
const PicksPerRound = 32
