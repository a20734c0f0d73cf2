package logic

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

// GenerateOptions controls one player's generation. Zero values mean:
// uniform random position, unshifted tier, full-career age band, current
// calendar year.
type GenerateOptions struct {
	Position   profiles.Position
	Tier       profiles.Tier
	AgeContext profiles.AgeContext
	Year       int
}

// AssemblerConfig wires the assembler's collaborators. Nil services fall
// back to the package defaults; a nil logger is replaced with a no-op.
type AssemblerConfig struct {
	Physical    PhysicalService
	Skills      SkillService
	ItFactor    ItFactorService
	Fit         FitService
	Traits      TraitService
	Consistency ConsistencyService
	Names       NameService
	Logger      *zap.Logger
}

type assemblerService struct {
	physical    PhysicalService
	skills      SkillService
	itFactor    ItFactorService
	fit         FitService
	traits      TraitService
	consistency ConsistencyService
	names       NameService
	logger      *zap.SugaredLogger
}

// NewAssembler builds the player assembler.
func NewAssembler(cfg AssemblerConfig) AssemblerService {
	if cfg.Physical == nil {
		cfg.Physical = NewPhysicalService()
	}
	if cfg.Skills == nil {
		cfg.Skills = NewSkillService()
	}
	if cfg.ItFactor == nil {
		cfg.ItFactor = NewItFactorService()
	}
	if cfg.Fit == nil {
		cfg.Fit = NewFitService()
	}
	if cfg.Traits == nil {
		cfg.Traits = NewTraitService()
	}
	if cfg.Consistency == nil {
		cfg.Consistency = NewConsistencyService()
	}
	if cfg.Names == nil {
		cfg.Names = NewNameService()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &assemblerService{
		physical:    cfg.Physical,
		skills:      cfg.Skills,
		itFactor:    cfg.ItFactor,
		fit:         cfg.Fit,
		traits:      cfg.Traits,
		consistency: cfg.Consistency,
		names:       cfg.Names,
		logger:      cfg.Logger.Sugar(),
	}
}

// Generate runs the fixed pipeline: position, age, physical, skills,
// traits, intangible factor, consistency, scheme fits, role fit, then
// draft history. The order matters: skills may reference physical-derived
// grouping, and both fits consume everything generated before them.
func (a *assemblerService) Generate(src *sampling.Source, opts GenerateOptions) *models.Player {
	pos := opts.Position
	if !pos.Valid() {
		pos = profiles.AllPositions[src.IntBetween(0, len(profiles.AllPositions)-1)]
	}
	tier := opts.Tier
	if !tier.Valid() {
		tier = profiles.TierRandom
	}
	ageCtx := opts.AgeContext
	if _, ok := profiles.AgeRanges[ageCtx]; !ok {
		ageCtx = profiles.AgeFullCareer
	}
	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	ageRange := profiles.AgeRanges[ageCtx]
	age := src.IntBetween(ageRange[0], ageRange[1])

	p := &models.Player{
		ID:       uuid.New(),
		Position: pos,
		Age:      age,
		Injury:   models.HealthyStatus(),
	}
	p.FirstName, p.LastName = a.names.Generate(src)

	p.Physical = a.physical.Generate(src, pos)
	p.Skills = a.skills.Generate(src, pos, age, tier)
	p.Traits = a.traits.Generate(src, pos)

	// A requested tier stands in for a draft projection when biasing the
	// intangible draw; a random tier draws unbiased.
	p.It = a.itFactor.Generate(src, profiles.TierDraftPickProxy[tier])

	p.Consistency = a.consistency.Generate(src, pos, p.It)
	p.SchemeFits = a.fit.DeriveSchemeFits(pos, p.Physical, p.Skills)
	p.Role = a.fit.DeriveRole(src, p.Skills, p.It, p.Consistency)

	a.fillCareer(src, p, ageCtx, year)

	a.logger.Debugw("player assembled",
		"id", p.ID, "position", p.Position, "age", p.Age, "ceiling", p.Role.Ceiling)
	return p
}

// fillCareer back-fills experience and draft history so a veteran's record
// is internally consistent with his role ceiling. Draft-eligible players
// have no history yet.
func (a *assemblerService) fillCareer(src *sampling.Source, p *models.Player, ageCtx profiles.AgeContext, year int) {
	if ageCtx == profiles.AgeDraftEligible {
		p.Experience = 0
		p.DraftYear = year
		return
	}

	entryAge := src.IntBetween(21, 23)
	p.Experience = p.Age - entryAge
	if p.Experience < 0 {
		p.Experience = 0
	}
	p.DraftYear = year - p.Experience

	rt := profiles.RoleHierarchy[profiles.RoleIndex(p.Role.Ceiling)]
	round := src.IntBetween(rt.DraftRoundMin, rt.DraftRoundMax)
	if round == 0 {
		// went undrafted
		return
	}
	p.DraftRound = round
	p.DraftPick = (round-1)*profiles.PicksPerRound + src.IntBetween(1, profiles.PicksPerRound)
}
