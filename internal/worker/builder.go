// Package worker implements the batch builders: full rosters, draft
// classes and whole leagues. Players are independent, so batches fan out
// across a bounded group of goroutines; determinism per parent seed is
// kept by splitting one child random source per player up front, in a
// fixed order, before any goroutine runs.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gridironforge/roster-api/internal/logic"
	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
	"github.com/gridironforge/roster-api/internal/sampling"
)

// DefaultDraftClassSize is the draft class headcount when none is given.
const DefaultDraftClassSize = 300

// DefaultLeagueTeams is the league size when none is given.
const DefaultLeagueTeams = 32

// Prometheus metrics
var (
	playersGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_players_generated_total",
		Help: "Total number of players generated",
	})

	batchesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_batches_completed_total",
		Help: "Total number of completed generation batches by kind",
	}, []string{"kind"})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roster_batch_duration_seconds",
		Help:    "Duration of batch generation",
		Buckets: prometheus.DefBuckets,
	})

	privacyScanFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_privacy_scan_failures_total",
		Help: "Projections that failed the forbidden-substring privacy scan",
	})
)

// Roster is one team's position-complete player set.
type Roster struct {
	TeamID  string
	Players []*models.Player
}

// BuilderConfig configures the batch builder. ClassSize and LeagueTeams
// set the fallbacks used when a request leaves them zero.
type BuilderConfig struct {
	Workers     int
	ClassSize   int
	LeagueTeams int
	Assembler   logic.AssemblerService
	Projector   logic.ProjectorService
	Logger      *zap.Logger
}

// Builder runs batch generation.
type Builder struct {
	workers     int
	classSize   int
	leagueTeams int
	assembler   logic.AssemblerService
	projector   logic.ProjectorService
	logger      *zap.SugaredLogger
}

// NewBuilder creates a batch builder.
func NewBuilder(cfg BuilderConfig) *Builder {
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if cfg.Assembler == nil {
		cfg.Assembler = logic.NewAssembler(logic.AssemblerConfig{Logger: cfg.Logger})
	}
	if cfg.Projector == nil {
		cfg.Projector = logic.NewProjector()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.ClassSize <= 0 {
		cfg.ClassSize = DefaultDraftClassSize
	}
	if cfg.LeagueTeams <= 0 {
		cfg.LeagueTeams = DefaultLeagueTeams
	}
	return &Builder{
		workers:     cfg.Workers,
		classSize:   cfg.ClassSize,
		leagueTeams: cfg.LeagueTeams,
		assembler:   cfg.Assembler,
		projector:   cfg.Projector,
		logger:      cfg.Logger.Sugar(),
	}
}

// job is one planned player: its options and its pre-split random source.
type job struct {
	src  *sampling.Source
	opts logic.GenerateOptions
}

// BuildRoster generates the fixed 53-man composition for one team. The
// first player at each position draws from the starter tier mix, the rest
// from the backup mix; ages come from the veteran band so the roster looks
// mid-career.
func (b *Builder) BuildRoster(ctx context.Context, src *sampling.Source, teamID string) (*Roster, error) {
	var jobs []job
	for _, pos := range profiles.AllPositions {
		count := profiles.RosterComposition[pos]
		for i := 0; i < count; i++ {
			mix := profiles.BackupMix
			if i == 0 {
				mix = profiles.StarterMix
			}
			jobs = append(jobs, job{
				src: src.Child(),
				opts: logic.GenerateOptions{
					Position:   pos,
					Tier:       drawTier(src, mix),
					AgeContext: profiles.AgeVeteran,
				},
			})
		}
	}

	players, err := b.run(ctx, "roster", jobs)
	if err != nil {
		return nil, err
	}
	return &Roster{TeamID: teamID, Players: players}, nil
}

// BuildDraftClass generates size draft-eligible prospects across uniformly
// random positions, with the class tier mix biased toward backup and
// fringe talent to produce the usual pyramid.
func (b *Builder) BuildDraftClass(ctx context.Context, src *sampling.Source, size int) ([]*models.Player, error) {
	if size <= 0 {
		size = b.classSize
	}
	jobs := make([]job, size)
	for i := range jobs {
		jobs[i] = job{
			src: src.Child(),
			opts: logic.GenerateOptions{
				Tier:       drawTier(src, profiles.DraftClassMix),
				AgeContext: profiles.AgeDraftEligible,
			},
		}
	}
	return b.run(ctx, "draft_class", jobs)
}

// BuildLeague generates one roster per team.
func (b *Builder) BuildLeague(ctx context.Context, src *sampling.Source, teams int) ([]*Roster, error) {
	if teams <= 0 {
		teams = b.leagueTeams
	}
	rosters := make([]*Roster, 0, teams)
	for i := 0; i < teams; i++ {
		roster, err := b.BuildRoster(ctx, src, fmt.Sprintf("team-%02d", i+1))
		if err != nil {
			return nil, err
		}
		rosters = append(rosters, roster)
	}
	return rosters, nil
}

// run executes the planned jobs across the worker group and audits every
// player's projection against the privacy scan.
func (b *Builder) run(ctx context.Context, kind string, jobs []job) ([]*models.Player, error) {
	start := time.Now()
	players := make([]*models.Player, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := b.assembler.Generate(j.src, j.opts)
			if err := b.auditProjection(p); err != nil {
				return err
			}
			players[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	playersGenerated.Add(float64(len(players)))
	batchesCompleted.WithLabelValues(kind).Inc()
	batchDuration.Observe(time.Since(start).Seconds())

	b.logger.Infow("batch generated",
		"kind", kind,
		"players", len(players),
		"duration", time.Since(start))
	return players, nil
}

// auditProjection is the operational form of the privacy regression guard:
// every generated player's serialized projection is scanned before the
// batch is handed anywhere.
func (b *Builder) auditProjection(p *models.Player) error {
	vm := b.projector.Project(p, "")
	serialized, err := json.Marshal(vm)
	if err != nil {
		return fmt.Errorf("serialize projection for %s: %w", p.ID, err)
	}
	if !models.CheckViewModelPrivacy(serialized) {
		privacyScanFailures.Inc()
		return fmt.Errorf("projection for %s leaked hidden state: %v",
			p.ID, models.PrivacyViolations(serialized))
	}
	return nil
}

func drawTier(src *sampling.Source, mix profiles.TierMix) profiles.Tier {
	return mix.Tiers[src.WeightedIndex(mix.Weights)]
}
