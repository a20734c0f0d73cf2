// Package handlers exposes the generation API over HTTP. Every response
// body is built from PlayerViewModel projections; the full Player entity
// never reaches a serializer in this package.
package handlers

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gridironforge/roster-api/internal/logic"
	"github.com/gridironforge/roster-api/internal/sampling"
	"github.com/gridironforge/roster-api/internal/worker"
)

// MaxBodySize limits the size of request bodies to 64KB; generation
// requests are tiny.
const MaxBodySize = 65536

type Config struct {
	Builder   *worker.Builder
	Assembler logic.AssemblerService
	Projector logic.ProjectorService
	Source    *sampling.Source
	Logger    *zap.Logger
}

type Handler struct {
	builder   *worker.Builder
	assembler logic.AssemblerService
	projector logic.ProjectorService
	logger    *zap.SugaredLogger
	validator *validator.Validate

	// the root source is not goroutine-safe; requests split children
	// under the lock and sample on their own
	mu   sync.Mutex
	root *sampling.Source
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Assembler == nil {
		cfg.Assembler = logic.NewAssembler(logic.AssemblerConfig{Logger: cfg.Logger})
	}
	if cfg.Projector == nil {
		cfg.Projector = logic.NewProjector()
	}
	if cfg.Builder == nil {
		cfg.Builder = worker.NewBuilder(worker.BuilderConfig{
			Assembler: cfg.Assembler,
			Projector: cfg.Projector,
			Logger:    cfg.Logger,
		})
	}
	if cfg.Source == nil {
		cfg.Source = sampling.NewSource(0)
	}
	return &Handler{
		builder:   cfg.Builder,
		assembler: cfg.Assembler,
		projector: cfg.Projector,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
		root:      cfg.Source,
	}
}

// requestSource derives an independent sampling source for one request.
func (h *Handler) requestSource() *sampling.Source {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.root.Child()
}
