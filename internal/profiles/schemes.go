package profiles

// Scheme describes what one offensive or defensive system asks of a player:
// optional physical preferences, weighted skills, and how much the scheme
// cares about each position. A zero physical preference means the scheme has
// no opinion on that measurement.
type Scheme struct {
	Name string
	Side Side

	// SpeedCeiling is the slowest acceptable forty time in seconds.
	SpeedCeiling float64
	MinAgility   float64
	MinStrength  float64

	// SkillWeights maps skill name to importance 1-10.
	SkillWeights map[string]int

	// PositionImportance maps position to 1-10; positions not listed use
	// DefaultPositionImportance.
	PositionImportance map[Position]int
}

// DefaultPositionImportance applies when a scheme does not single a
// position out.
const DefaultPositionImportance = 5

// ImportanceFor returns how much this scheme emphasizes pos.
func (s Scheme) ImportanceFor(pos Position) int {
	if imp, ok := s.PositionImportance[pos]; ok {
		return imp
	}
	return DefaultPositionImportance
}

// Schemes is the full scheme catalog, offense then defense.
var Schemes = []Scheme{
	{
		Name:         "air_raid",
		Side:         Offense,
		SpeedCeiling: 4.65,
		SkillWeights: map[string]int{
			"throw_accuracy_mid":  9,
			"throw_accuracy_deep": 8,
			"catching":            8,
			"route_running_mid":   7,
			"route_running_deep":  7,
			"release":             5,
			"pass_blocking":       6,
		},
		PositionImportance: map[Position]int{
			QB: 10, WR: 9, TE: 6, RB: 4, LT: 7, RT: 7, LG: 5, C: 5, RG: 5,
		},
	},
	{
		Name:       "west_coast",
		Side:       Offense,
		MinAgility: 70,
		SkillWeights: map[string]int{
			"throw_accuracy_short": 9,
			"field_vision":         7,
			"route_running_short":  8,
			"run_after_catch":      8,
			"catching":             7,
			"receiving":            6,
		},
		PositionImportance: map[Position]int{
			QB: 10, WR: 8, RB: 7, TE: 7, LT: 6, RT: 6, LG: 5, C: 6, RG: 5,
		},
	},
	{
		Name:        "power_run",
		Side:        Offense,
		MinStrength: 75,
		SkillWeights: map[string]int{
			"run_blocking":    9,
			"impact_blocking": 7,
			"lead_blocking":   6,
			"trucking":        8,
			"break_tackle":    7,
			"carrying":        6,
			"play_action":     5,
		},
		PositionImportance: map[Position]int{
			RB: 9, LT: 8, LG: 8, C: 8, RG: 8, RT: 8, TE: 7, QB: 4, WR: 3,
		},
	},
	{
		Name:         "spread_option",
		Side:         Offense,
		SpeedCeiling: 4.60,
		MinAgility:   75,
		SkillWeights: map[string]int{
			"scrambling":          8,
			"throw_on_run":        7,
			"elusiveness":         8,
			"ball_carrier_vision": 6,
			"route_running_short": 6,
			"run_after_catch":     7,
		},
		PositionImportance: map[Position]int{
			QB: 10, RB: 8, WR: 7, TE: 5, LT: 5, LG: 5, C: 5, RG: 5, RT: 5,
		},
	},
	{
		Name: "pro_style",
		Side: Offense,
		SkillWeights: map[string]int{
			"throw_accuracy_short": 7,
			"throw_accuracy_mid":   7,
			"play_action":          7,
			"pocket_presence":      6,
			"run_blocking":         6,
			"pass_blocking":        6,
			"catching":             6,
		},
		PositionImportance: map[Position]int{
			QB: 9, TE: 7, LT: 7, RT: 7, WR: 6, RB: 6, LG: 6, C: 6, RG: 6,
		},
	},
	{
		Name:        "base_4_3",
		Side:        Defense,
		MinStrength: 70,
		SkillWeights: map[string]int{
			"tackling":         8,
			"block_shedding":   8,
			"pass_rush_power":  7,
			"pursuit":          6,
			"play_recognition": 6,
			"zone_coverage":    5,
		},
		PositionImportance: map[Position]int{
			DE: 9, DT: 9, MLB: 8, OLB: 7, SS: 6, CB: 5, FS: 5,
		},
	},
	{
		Name:        "base_3_4",
		Side:        Defense,
		MinStrength: 78,
		SkillWeights: map[string]int{
			"block_shedding":    9,
			"pass_rush_power":   7,
			"pass_rush_finesse": 6,
			"tackling":          7,
			"hit_power":         6,
			"play_recognition":  6,
		},
		PositionImportance: map[Position]int{
			DT: 9, DE: 8, OLB: 9, MLB: 7, SS: 5, CB: 4, FS: 4,
		},
	},
	{
		Name:         "tampa_2",
		Side:         Defense,
		SpeedCeiling: 4.70,
		MinAgility:   72,
		SkillWeights: map[string]int{
			"zone_coverage":    9,
			"pursuit":          8,
			"play_recognition": 8,
			"tackling":         7,
			"man_coverage":     4,
		},
		PositionImportance: map[Position]int{
			MLB: 9, FS: 9, CB: 8, OLB: 7, SS: 7, DE: 6, DT: 5,
		},
	},
	{
		Name:         "man_press",
		Side:         Defense,
		SpeedCeiling: 4.55,
		MinAgility:   80,
		SkillWeights: map[string]int{
			"man_coverage":      10,
			"press":             9,
			"pass_rush_finesse": 6,
			"catching":          4,
			"hit_power":         4,
		},
		PositionImportance: map[Position]int{
			CB: 10, FS: 8, SS: 8, OLB: 6, DE: 6, MLB: 4, DT: 3,
		},
	},
	{
		Name:       "zone_blitz",
		Side:       Defense,
		MinAgility: 68,
		SkillWeights: map[string]int{
			"pass_rush_finesse": 8,
			"zone_coverage":     7,
			"block_shedding":    6,
			"play_recognition":  8,
			"pursuit":           6,
		},
		PositionImportance: map[Position]int{
			OLB: 9, MLB: 8, SS: 8, DE: 7, CB: 6, FS: 6, DT: 5,
		},
	},
}

// SchemeByName looks up a scheme; ok is false for unknown names.
func SchemeByName(name string) (Scheme, bool) {
	for _, s := range Schemes {
		if s.Name == name {
			return s, true
		}
	}
	return Scheme{}, false
}

// SchemeNames returns every scheme name in catalog order.
func SchemeNames() []string {
	names := make([]string, len(Schemes))
	for i, s := range Schemes {
		names[i] = s.Name
	}
	return names
}
