// Package profiles holds the immutable configuration tables that drive
// player generation: the position taxonomy, per-position physical and skill
// distributions, scheme preference profiles, the role hierarchy and the
// roster composition table. There is no behavior here, only data lookup;
// all tables are package-level literals loaded once.
package profiles

// Position identifies a roster position.
type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR"
	TE Position = "TE"
	LT Position = "LT"
	LG Position = "LG"
	C  Position = "C"
	RG Position = "RG"
	RT Position = "RT"
	DE Position = "DE"
	DT Position = "DT"
	OLB Position = "OLB"
	MLB Position = "MLB"
	CB Position = "CB"
	FS Position = "FS"
	SS Position = "SS"
	K  Position = "K"
	P  Position = "P"
)

// Side groups positions into offense, defense and special teams.
type Side string

const (
	Offense      Side = "offense"
	Defense      Side = "defense"
	SpecialTeams Side = "special_teams"
)

// SkillGroup names the skill table a position draws from.
type SkillGroup string

const (
	GroupQB SkillGroup = "QB"
	GroupRB SkillGroup = "RB"
	GroupWR SkillGroup = "WR"
	GroupTE SkillGroup = "TE"
	GroupOL SkillGroup = "OL"
	GroupDL SkillGroup = "DL"
	GroupLB SkillGroup = "LB"
	GroupDB SkillGroup = "DB"
	GroupK  SkillGroup = "K"
	GroupP  SkillGroup = "P"
)

// AllPositions lists every position in roster order.
var AllPositions = []Position{
	QB, RB, WR, TE, LT, LG, C, RG, RT,
	DE, DT, OLB, MLB, CB, FS, SS,
	K, P,
}

var positionSides = map[Position]Side{
	QB: Offense, RB: Offense, WR: Offense, TE: Offense,
	LT: Offense, LG: Offense, C: Offense, RG: Offense, RT: Offense,
	DE: Defense, DT: Defense, OLB: Defense, MLB: Defense,
	CB: Defense, FS: Defense, SS: Defense,
	K: SpecialTeams, P: SpecialTeams,
}

var positionGroups = map[Position]SkillGroup{
	QB: GroupQB, RB: GroupRB, WR: GroupWR, TE: GroupTE,
	LT: GroupOL, LG: GroupOL, C: GroupOL, RG: GroupOL, RT: GroupOL,
	DE: GroupDL, DT: GroupDL,
	OLB: GroupLB, MLB: GroupLB,
	CB: GroupDB, FS: GroupDB, SS: GroupDB,
	K: GroupK, P: GroupP,
}

// SideOf returns the side a position plays on.
func SideOf(pos Position) Side {
	if side, ok := positionSides[pos]; ok {
		return side
	}
	return Offense
}

// GroupOf returns the skill group a position draws its skill table from.
func GroupOf(pos Position) SkillGroup {
	if g, ok := positionGroups[pos]; ok {
		return g
	}
	return GroupRB
}

// Valid reports whether pos is a known position.
func (p Position) Valid() bool {
	_, ok := positionSides[p]
	return ok
}

// RosterComposition maps each position to its fixed roster headcount.
// The values sum to RosterSize.
var RosterComposition = map[Position]int{
	QB: 3, RB: 4, WR: 6, TE: 3,
	LT: 2, LG: 2, C: 2, RG: 2, RT: 2,
	DE: 4, DT: 4, OLB: 4, MLB: 3,
	CB: 6, FS: 2, SS: 2,
	K: 1, P: 1,
}

// RosterSize is the published roster size produced by the roster builder.
const RosterSize = 53
