package profiles

// Dist holds the parameters of one bounded-normal attribute distribution.
type Dist struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// PhysicalProfile holds the per-attribute distributions for one position.
// Height and weight are inches and pounds, arm length and hand size inches,
// speed is a forty-yard dash time in seconds (lower is faster), vertical
// jump inches. Acceleration, agility and strength are 40-99 ratings.
type PhysicalProfile struct {
	Height       Dist
	Weight       Dist
	ArmLength    Dist
	HandSize     Dist
	Speed        Dist
	Acceleration Dist
	Agility      Dist
	Strength     Dist
	VerticalJump Dist
}

// WingspanMin and WingspanMax bound the derived wingspan value.
const (
	WingspanMin = 68.0
	WingspanMax = 86.0
)

var physicalProfiles = map[Position]PhysicalProfile{
	QB: {
		Height:       Dist{75, 1.6, 70, 80},
		Weight:       Dist{222, 10, 195, 255},
		ArmLength:    Dist{32.0, 0.8, 29.5, 34.5},
		HandSize:     Dist{9.6, 0.4, 8.5, 10.8},
		Speed:        Dist{4.85, 0.18, 4.4, 5.3},
		Acceleration: Dist{72, 8, 45, 95},
		Agility:      Dist{72, 8, 45, 95},
		Strength:     Dist{62, 8, 40, 85},
		VerticalJump: Dist{31, 2.5, 25, 38},
	},
	RB: {
		Height:       Dist{70, 1.5, 66, 74},
		Weight:       Dist{214, 12, 185, 250},
		ArmLength:    Dist{31.0, 0.8, 29.0, 33.5},
		HandSize:     Dist{9.3, 0.4, 8.3, 10.5},
		Speed:        Dist{4.52, 0.09, 4.3, 4.8},
		Acceleration: Dist{88, 5, 70, 99},
		Agility:      Dist{87, 5, 70, 99},
		Strength:     Dist{74, 8, 50, 95},
		VerticalJump: Dist{36, 2.5, 29, 44},
	},
	WR: {
		Height:       Dist{73, 2.0, 68, 78},
		Weight:       Dist{200, 12, 170, 235},
		ArmLength:    Dist{31.8, 1.0, 29.0, 34.5},
		HandSize:     Dist{9.3, 0.4, 8.3, 10.5},
		Speed:        Dist{4.46, 0.08, 4.25, 4.7},
		Acceleration: Dist{90, 4, 75, 99},
		Agility:      Dist{88, 5, 70, 99},
		Strength:     Dist{60, 8, 40, 82},
		VerticalJump: Dist{37, 2.5, 30, 45},
	},
	TE: {
		Height:       Dist{77, 1.4, 73, 80},
		Weight:       Dist{252, 10, 230, 280},
		ArmLength:    Dist{33.2, 0.8, 31.0, 35.5},
		HandSize:     Dist{9.9, 0.4, 9.0, 11.0},
		Speed:        Dist{4.72, 0.10, 4.45, 5.0},
		Acceleration: Dist{80, 6, 60, 95},
		Agility:      Dist{77, 6, 58, 93},
		Strength:     Dist{76, 7, 58, 93},
		VerticalJump: Dist{34, 2.5, 27, 41},
	},
	LT: {
		Height:       Dist{78, 1.2, 75, 81},
		Weight:       Dist{315, 12, 290, 350},
		ArmLength:    Dist{34.5, 0.8, 32.5, 36.5},
		HandSize:     Dist{10.2, 0.4, 9.3, 11.3},
		Speed:        Dist{5.20, 0.14, 4.85, 5.6},
		Acceleration: Dist{62, 7, 40, 82},
		Agility:      Dist{64, 7, 42, 84},
		Strength:     Dist{90, 4, 75, 99},
		VerticalJump: Dist{28, 2.2, 22, 35},
	},
	LG: {
		Height:       Dist{76, 1.2, 73, 80},
		Weight:       Dist{318, 12, 295, 355},
		ArmLength:    Dist{33.8, 0.8, 32.0, 36.0},
		HandSize:     Dist{10.1, 0.4, 9.2, 11.2},
		Speed:        Dist{5.28, 0.14, 4.95, 5.65},
		Acceleration: Dist{59, 7, 40, 80},
		Agility:      Dist{60, 7, 40, 80},
		Strength:     Dist{91, 4, 76, 99},
		VerticalJump: Dist{27, 2.2, 21, 34},
	},
	C: {
		Height:       Dist{75, 1.2, 72, 79},
		Weight:       Dist{305, 10, 285, 335},
		ArmLength:    Dist{33.0, 0.7, 31.5, 35.0},
		HandSize:     Dist{10.0, 0.4, 9.2, 11.0},
		Speed:        Dist{5.22, 0.13, 4.9, 5.6},
		Acceleration: Dist{61, 7, 42, 82},
		Agility:      Dist{62, 7, 42, 82},
		Strength:     Dist{89, 4, 74, 99},
		VerticalJump: Dist{27, 2.2, 21, 34},
	},
	RG: {
		Height:       Dist{76, 1.2, 73, 80},
		Weight:       Dist{318, 12, 295, 355},
		ArmLength:    Dist{33.8, 0.8, 32.0, 36.0},
		HandSize:     Dist{10.1, 0.4, 9.2, 11.2},
		Speed:        Dist{5.28, 0.14, 4.95, 5.65},
		Acceleration: Dist{59, 7, 40, 80},
		Agility:      Dist{60, 7, 40, 80},
		Strength:     Dist{91, 4, 76, 99},
		VerticalJump: Dist{27, 2.2, 21, 34},
	},
	RT: {
		Height:       Dist{78, 1.2, 74, 81},
		Weight:       Dist{320, 12, 295, 355},
		ArmLength:    Dist{34.2, 0.8, 32.3, 36.3},
		HandSize:     Dist{10.2, 0.4, 9.3, 11.3},
		Speed:        Dist{5.25, 0.14, 4.9, 5.6},
		Acceleration: Dist{61, 7, 40, 82},
		Agility:      Dist{62, 7, 42, 83},
		Strength:     Dist{90, 4, 75, 99},
		VerticalJump: Dist{28, 2.2, 22, 35},
	},
	DE: {
		Height:       Dist{76, 1.4, 72, 80},
		Weight:       Dist{268, 14, 240, 305},
		ArmLength:    Dist{33.8, 0.9, 31.5, 36.0},
		HandSize:     Dist{10.0, 0.4, 9.0, 11.2},
		Speed:        Dist{4.78, 0.12, 4.5, 5.15},
		Acceleration: Dist{81, 6, 60, 96},
		Agility:      Dist{76, 6, 56, 92},
		Strength:     Dist{84, 5, 66, 97},
		VerticalJump: Dist{33, 2.5, 26, 40},
	},
	DT: {
		Height:       Dist{75, 1.4, 72, 79},
		Weight:       Dist{308, 14, 280, 350},
		ArmLength:    Dist{33.5, 0.9, 31.5, 35.5},
		HandSize:     Dist{10.1, 0.4, 9.2, 11.2},
		Speed:        Dist{5.08, 0.14, 4.75, 5.5},
		Acceleration: Dist{68, 7, 46, 86},
		Agility:      Dist{64, 7, 44, 84},
		Strength:     Dist{92, 4, 78, 99},
		VerticalJump: Dist{29, 2.2, 23, 36},
	},
	OLB: {
		Height:       Dist{74, 1.3, 71, 78},
		Weight:       Dist{242, 10, 220, 270},
		ArmLength:    Dist{32.8, 0.8, 30.5, 35.0},
		HandSize:     Dist{9.8, 0.4, 8.8, 10.8},
		Speed:        Dist{4.65, 0.09, 4.42, 4.95},
		Acceleration: Dist{85, 5, 66, 97},
		Agility:      Dist{82, 5, 64, 96},
		Strength:     Dist{79, 6, 60, 94},
		VerticalJump: Dist{35, 2.4, 28, 42},
	},
	MLB: {
		Height:       Dist{73, 1.3, 70, 77},
		Weight:       Dist{240, 9, 220, 265},
		ArmLength:    Dist{32.3, 0.8, 30.0, 34.5},
		HandSize:     Dist{9.7, 0.4, 8.8, 10.8},
		Speed:        Dist{4.68, 0.09, 4.45, 4.95},
		Acceleration: Dist{84, 5, 65, 96},
		Agility:      Dist{81, 5, 62, 95},
		Strength:     Dist{80, 6, 62, 95},
		VerticalJump: Dist{34, 2.4, 27, 41},
	},
	CB: {
		Height:       Dist{71, 1.4, 68, 75},
		Weight:       Dist{192, 8, 175, 215},
		ArmLength:    Dist{31.3, 0.8, 29.0, 33.5},
		HandSize:     Dist{9.1, 0.4, 8.2, 10.2},
		Speed:        Dist{4.44, 0.07, 4.25, 4.65},
		Acceleration: Dist{92, 4, 78, 99},
		Agility:      Dist{90, 4, 75, 99},
		Strength:     Dist{58, 7, 40, 78},
		VerticalJump: Dist{38, 2.3, 31, 45},
	},
	FS: {
		Height:       Dist{72, 1.3, 69, 76},
		Weight:       Dist{202, 8, 185, 222},
		ArmLength:    Dist{31.6, 0.8, 29.5, 33.8},
		HandSize:     Dist{9.3, 0.4, 8.3, 10.3},
		Speed:        Dist{4.50, 0.07, 4.3, 4.72},
		Acceleration: Dist{90, 4, 75, 99},
		Agility:      Dist{87, 5, 72, 99},
		Strength:     Dist{62, 7, 44, 82},
		VerticalJump: Dist{37, 2.3, 30, 44},
	},
	SS: {
		Height:       Dist{72, 1.3, 69, 76},
		Weight:       Dist{210, 8, 192, 230},
		ArmLength:    Dist{31.8, 0.8, 29.5, 34.0},
		HandSize:     Dist{9.4, 0.4, 8.4, 10.4},
		Speed:        Dist{4.55, 0.08, 4.35, 4.8},
		Acceleration: Dist{88, 4, 72, 98},
		Agility:      Dist{85, 5, 68, 97},
		Strength:     Dist{68, 7, 50, 88},
		VerticalJump: Dist{36, 2.3, 29, 43},
	},
	K: {
		Height:       Dist{72, 1.6, 68, 77},
		Weight:       Dist{195, 10, 170, 225},
		ArmLength:    Dist{30.8, 0.9, 28.5, 33.0},
		HandSize:     Dist{9.1, 0.4, 8.2, 10.2},
		Speed:        Dist{5.00, 0.18, 4.6, 5.5},
		Acceleration: Dist{58, 8, 40, 80},
		Agility:      Dist{62, 8, 42, 84},
		Strength:     Dist{52, 8, 40, 75},
		VerticalJump: Dist{29, 2.5, 22, 37},
	},
	P: {
		Height:       Dist{74, 1.6, 70, 78},
		Weight:       Dist{212, 10, 185, 240},
		ArmLength:    Dist{31.5, 0.9, 29.0, 34.0},
		HandSize:     Dist{9.3, 0.4, 8.4, 10.4},
		Speed:        Dist{5.02, 0.18, 4.6, 5.5},
		Acceleration: Dist{57, 8, 40, 80},
		Agility:      Dist{61, 8, 42, 84},
		Strength:     Dist{55, 8, 40, 78},
		VerticalJump: Dist{29, 2.5, 22, 37},
	},
}

// PhysicalFor returns the physical distribution profile for pos. Unknown
// positions fall back to the RB profile rather than failing; generation
// paths are total.
func PhysicalFor(pos Position) PhysicalProfile {
	if p, ok := physicalProfiles[pos]; ok {
		return p
	}
	return physicalProfiles[RB]
}
