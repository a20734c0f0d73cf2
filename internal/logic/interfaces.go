// Package logic implements the generation pipeline: physical attributes,
// technical skills with their scouted bands, the hidden intangible factor,
// role and scheme fit derivation, the player assembler and the
// privacy-enforcing view projector. Every generator takes an explicit
// sampling.Source; nothing here reads ambient random state.
package logic

import (
	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

// PhysicalService generates position-conditioned, internally correlated
// physical measurements.
type PhysicalService interface {
	Generate(src *sampling.Source, pos profiles.Position) models.PhysicalAttributes
}

// SkillService generates the position's skill map with true values and
// age-dependent perceived bands.
type SkillService interface {
	Generate(src *sampling.Source, pos profiles.Position, age int, tier profiles.Tier) map[string]models.SkillValue
}

// ItFactorService samples the hidden intangible scalar, optionally biased
// by a projected draft slot (0 = no projection).
type ItFactorService interface {
	Generate(src *sampling.Source, projectedPick int) models.ItFactor
}

// FitService derives role placement and per-scheme fit labels from
// already-generated data.
type FitService interface {
	DeriveRole(src *sampling.Source, skills map[string]models.SkillValue, it models.ItFactor, consistency models.ConsistencyProfile) models.RoleFit
	DeriveSchemeFits(pos profiles.Position, phys models.PhysicalAttributes, skills map[string]models.SkillValue) models.SchemeFits
}

// TraitService produces the hidden personality traits and the revealed
// subset. External collaborator; reveal timing is not modeled here.
type TraitService interface {
	Generate(src *sampling.Source, pos profiles.Position) models.TraitSet
}

// ConsistencyService produces the hidden consistency profile, seeded by
// the intangible factor. External collaborator.
type ConsistencyService interface {
	Generate(src *sampling.Source, pos profiles.Position, it models.ItFactor) models.ConsistencyProfile
}

// NameService supplies player names. External collaborator (simple lookup).
type NameService interface {
	Generate(src *sampling.Source) (first, last string)
}

// AssemblerService orchestrates the full per-player pipeline.
type AssemblerService interface {
	Generate(src *sampling.Source, opts GenerateOptions) *models.Player
}

// ProjectorService is the only approved path from a Player to anything
// handed to non-engine consumers.
type ProjectorService interface {
	Project(p *models.Player, scheme string) *models.PlayerViewModel
}
