package profiles

// SkillDef declares one technical skill: its sampling distribution and the
// earlier skills its mean is blended toward. The order of each group's list
// is semantically meaningful: correlation is directional, a skill may only
// reference skills declared before it, and forward references are silently
// ignored at generation time. Do not reorder these lists.
type SkillDef struct {
	Name           string
	Mean           float64
	StdDev         float64
	CorrelatedWith []string
}

// MaturityRange bounds the age at which a position's skills become fully
// scouted (the perceived range collapses onto the true value).
type MaturityRange struct {
	Min int
	Max int
}

var skillTables = map[SkillGroup][]SkillDef{
	GroupQB: {
		{Name: "throw_power", Mean: 72, StdDev: 12},
		{Name: "throw_accuracy_short", Mean: 70, StdDev: 12},
		{Name: "throw_accuracy_mid", Mean: 64, StdDev: 12, CorrelatedWith: []string{"throw_accuracy_short"}},
		{Name: "throw_accuracy_deep", Mean: 58, StdDev: 13, CorrelatedWith: []string{"throw_accuracy_short", "throw_accuracy_mid"}},
		{Name: "throw_on_run", Mean: 58, StdDev: 13, CorrelatedWith: []string{"throw_power", "throw_accuracy_mid"}},
		{Name: "play_action", Mean: 60, StdDev: 12},
		{Name: "pocket_presence", Mean: 58, StdDev: 14},
		{Name: "field_vision", Mean: 60, StdDev: 14, CorrelatedWith: []string{"pocket_presence"}},
		{Name: "scrambling", Mean: 55, StdDev: 15},
	},
	GroupRB: {
		{Name: "carrying", Mean: 68, StdDev: 11},
		{Name: "break_tackle", Mean: 64, StdDev: 12},
		{Name: "trucking", Mean: 58, StdDev: 14, CorrelatedWith: []string{"break_tackle"}},
		{Name: "elusiveness", Mean: 62, StdDev: 13},
		{Name: "ball_carrier_vision", Mean: 60, StdDev: 13, CorrelatedWith: []string{"elusiveness"}},
		{Name: "receiving", Mean: 54, StdDev: 15},
		{Name: "pass_blocking", Mean: 48, StdDev: 13},
	},
	GroupWR: {
		{Name: "catching", Mean: 70, StdDev: 11},
		{Name: "catch_in_traffic", Mean: 60, StdDev: 13, CorrelatedWith: []string{"catching"}},
		{Name: "spectacular_catch", Mean: 56, StdDev: 14, CorrelatedWith: []string{"catching", "catch_in_traffic"}},
		{Name: "route_running_short", Mean: 66, StdDev: 12},
		{Name: "route_running_mid", Mean: 61, StdDev: 12, CorrelatedWith: []string{"route_running_short"}},
		{Name: "route_running_deep", Mean: 57, StdDev: 13, CorrelatedWith: []string{"route_running_short", "route_running_mid"}},
		{Name: "release", Mean: 58, StdDev: 13},
		{Name: "run_after_catch", Mean: 60, StdDev: 14},
	},
	GroupTE: {
		{Name: "catching", Mean: 64, StdDev: 12},
		{Name: "catch_in_traffic", Mean: 60, StdDev: 13, CorrelatedWith: []string{"catching"}},
		{Name: "route_running_short", Mean: 58, StdDev: 12},
		{Name: "release", Mean: 52, StdDev: 13},
		{Name: "run_blocking", Mean: 60, StdDev: 13},
		{Name: "pass_blocking", Mean: 54, StdDev: 13, CorrelatedWith: []string{"run_blocking"}},
	},
	GroupOL: {
		{Name: "run_blocking", Mean: 68, StdDev: 11},
		{Name: "pass_blocking", Mean: 66, StdDev: 12, CorrelatedWith: []string{"run_blocking"}},
		{Name: "impact_blocking", Mean: 60, StdDev: 13, CorrelatedWith: []string{"run_blocking", "pass_blocking"}},
		{Name: "lead_blocking", Mean: 56, StdDev: 13, CorrelatedWith: []string{"run_blocking"}},
		{Name: "awareness", Mean: 60, StdDev: 14},
	},
	GroupDL: {
		{Name: "pass_rush_power", Mean: 64, StdDev: 12},
		{Name: "pass_rush_finesse", Mean: 58, StdDev: 14},
		{Name: "block_shedding", Mean: 62, StdDev: 12, CorrelatedWith: []string{"pass_rush_power"}},
		{Name: "tackling", Mean: 66, StdDev: 11},
		{Name: "pursuit", Mean: 60, StdDev: 13, CorrelatedWith: []string{"tackling"}},
		{Name: "play_recognition", Mean: 58, StdDev: 14},
	},
	GroupLB: {
		{Name: "tackling", Mean: 70, StdDev: 10},
		{Name: "hit_power", Mean: 64, StdDev: 12, CorrelatedWith: []string{"tackling"}},
		{Name: "block_shedding", Mean: 60, StdDev: 13},
		{Name: "pursuit", Mean: 64, StdDev: 12, CorrelatedWith: []string{"tackling"}},
		{Name: "zone_coverage", Mean: 56, StdDev: 14},
		{Name: "man_coverage", Mean: 50, StdDev: 14, CorrelatedWith: []string{"zone_coverage"}},
		{Name: "play_recognition", Mean: 60, StdDev: 14},
	},
	GroupDB: {
		{Name: "man_coverage", Mean: 66, StdDev: 12},
		{Name: "zone_coverage", Mean: 64, StdDev: 12, CorrelatedWith: []string{"man_coverage"}},
		{Name: "press", Mean: 58, StdDev: 14, CorrelatedWith: []string{"man_coverage"}},
		{Name: "catching", Mean: 52, StdDev: 13},
		{Name: "tackling", Mean: 58, StdDev: 13},
		{Name: "pursuit", Mean: 62, StdDev: 12, CorrelatedWith: []string{"tackling"}},
		{Name: "play_recognition", Mean: 58, StdDev: 14},
	},
	GroupK: {
		{Name: "kick_power", Mean: 68, StdDev: 11},
		{Name: "kick_accuracy", Mean: 66, StdDev: 12},
		{Name: "awareness", Mean: 55, StdDev: 14},
	},
	GroupP: {
		{Name: "kick_power", Mean: 66, StdDev: 11},
		{Name: "kick_accuracy", Mean: 62, StdDev: 12},
		{Name: "awareness", Mean: 55, StdDev: 14},
	},
}

var maturityRanges = map[SkillGroup]MaturityRange{
	GroupQB: {26, 29},
	GroupRB: {24, 26},
	GroupWR: {25, 27},
	GroupTE: {25, 28},
	GroupOL: {26, 29},
	GroupDL: {25, 28},
	GroupLB: {25, 27},
	GroupDB: {24, 27},
	GroupK:  {27, 30},
	GroupP:  {27, 30},
}

// SkillsFor returns the ordered skill declarations for a position.
func SkillsFor(pos Position) []SkillDef {
	return skillTables[GroupOf(pos)]
}

// MaturityFor returns the maturity-age range for a position.
func MaturityFor(pos Position) MaturityRange {
	if r, ok := maturityRanges[GroupOf(pos)]; ok {
		return r
	}
	return MaturityRange{25, 28}
}
