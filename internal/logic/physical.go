package logic

import (
	"math"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

type physicalService struct{}

// NewPhysicalService builds the physical attribute generator.
func NewPhysicalService() PhysicalService {
	return &physicalService{}
}

// Generate samples one set of measurements for pos. The correlations run
// in a fixed order: height pulls weight and arm length, weight pulls
// strength up and vertical jump down, and wingspan is derived from height
// rather than sampled. Every output is range-valid by construction.
func (s *physicalService) Generate(src *sampling.Source, pos profiles.Position) models.PhysicalAttributes {
	prof := profiles.PhysicalFor(pos)

	height := src.BoundedNormal(prof.Height.Mean, prof.Height.StdDev, prof.Height.Min, prof.Height.Max)
	heightDev := (height - prof.Height.Mean) / prof.Height.StdDev

	weight := src.BoundedNormal(
		prof.Weight.Mean+heightDev*prof.Weight.StdDev*0.5,
		prof.Weight.StdDev, prof.Weight.Min, prof.Weight.Max)

	armLength := src.BoundedNormal(
		prof.ArmLength.Mean+heightDev*prof.ArmLength.StdDev*0.3,
		prof.ArmLength.StdDev, prof.ArmLength.Min, prof.ArmLength.Max)

	wingspan := height * src.FloatBetween(1.02, 1.05)
	wingspan = math.Min(profiles.WingspanMax, math.Max(profiles.WingspanMin, wingspan))

	handSize := src.BoundedNormal(prof.HandSize.Mean, prof.HandSize.StdDev, prof.HandSize.Min, prof.HandSize.Max)
	speed := src.BoundedNormal(prof.Speed.Mean, prof.Speed.StdDev, prof.Speed.Min, prof.Speed.Max)

	acceleration := src.BoundedNormal(prof.Acceleration.Mean, prof.Acceleration.StdDev, prof.Acceleration.Min, prof.Acceleration.Max)
	agility := src.BoundedNormal(prof.Agility.Mean, prof.Agility.StdDev, prof.Agility.Min, prof.Agility.Max)

	weightDev := (weight - prof.Weight.Mean) / prof.Weight.StdDev

	strength := src.BoundedNormal(
		prof.Strength.Mean+weightDev*prof.Strength.StdDev*0.2,
		prof.Strength.StdDev, prof.Strength.Min, prof.Strength.Max)

	// heavier players jump lower
	vertical := src.BoundedNormal(
		prof.VerticalJump.Mean-weightDev*1.5,
		prof.VerticalJump.StdDev, prof.VerticalJump.Min, prof.VerticalJump.Max)

	return models.PhysicalAttributes{
		Height:       int(math.Round(height)),
		Weight:       int(math.Round(weight)),
		ArmLength:    round1(armLength),
		HandSize:     round1(handSize),
		Wingspan:     round1(wingspan),
		Speed:        round2(speed),
		Acceleration: int(math.Round(acceleration)),
		Agility:      int(math.Round(agility)),
		Strength:     int(math.Round(strength)),
		VerticalJump: int(math.Round(vertical)),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
