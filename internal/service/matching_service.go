package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/buddy-service/internal/config"
	"github.com/spec-kit/buddy-service/internal/domain"
	"github.com/spec-kit/buddy-service/internal/events"
	"github.com/spec-kit/buddy-service/internal/matching"
	"github.com/spec-kit/buddy-service/internal/observability"
	"github.com/spec-kit/buddy-service/internal/roster"
	"github.com/spec-kit/buddy-service/pkg/util/errorutil"
)

// MatchingService turns roster documents into buddy assignments.
type MatchingService struct {
	engine      *matching.Engine
	dispatcher  events.Dispatcher
	metrics     *observability.Metrics
	logger      *zap.Logger
	defaultSeed *uint64
	now         func() time.Time
}

// MatchingDependencies bundles collaborators. Only Logger is required.
type MatchingDependencies struct {
	Engine     *matching.Engine
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Config     config.MatchingConfig
}

// RunOptions tune a single run.
type RunOptions struct {
	// Seed overrides the configured seed for a reproducible shuffle.
	Seed *uint64
}

// NewMatchingService creates the service.
func NewMatchingService(deps MatchingDependencies) *MatchingService {
	engine := deps.Engine
	if engine == nil {
		engine = matching.NewEngine()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchingService{
		engine:      engine,
		dispatcher:  deps.Dispatcher,
		metrics:     deps.Metrics,
		logger:      logger,
		defaultSeed: deps.Config.Seed,
		now:         time.Now,
	}
}

// RunReader decodes a serialized roster and runs it.
func (s *MatchingService) RunReader(ctx context.Context, r io.Reader, format roster.Format, opts RunOptions) (*domain.MatchRun, error) {
	doc, err := roster.Decode(r, format)
	if err != nil {
		s.publishRejected(ctx, err)
		return nil, err
	}
	return s.Run(ctx, doc, opts)
}

// Run normalizes doc, pairs its members and returns the completed run.
func (s *MatchingService) Run(ctx context.Context, doc roster.Object, opts RunOptions) (*domain.MatchRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	normalized, err := roster.Normalize(doc)
	if err != nil {
		s.publishRejected(ctx, err)
		return nil, err
	}

	seed := opts.Seed
	if seed == nil {
		seed = s.defaultSeed
	}
	engine := s.engine
	if seed != nil {
		engine = matching.NewEngine(matching.WithShuffler(matching.SeededShuffler(*seed)))
	}

	results := engine.Match(normalized)
	run := &domain.MatchRun{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Seed:      seed,
		Summary:   domain.Summarize(normalized, results),
		Results:   results,
	}

	s.metrics.RecordRun(run.Summary.Pairs, run.Summary.Unmatched, run.CreatedAt)
	s.logger.Info("matches computed",
		zap.String("run_id", run.ID),
		zap.Int("persons", run.Summary.TotalPersons),
		zap.Int("departments", run.Summary.Departments),
		zap.Int("pairs", run.Summary.Pairs),
		zap.Int("unmatched", run.Summary.Unmatched),
	)
	s.publish(ctx, events.Event{
		Type:    events.EventMatchesComputed,
		RunID:   run.ID,
		Payload: events.MatchesComputedPayload{Summary: run.Summary, Seeded: seed != nil},
	})
	return run, nil
}

func (s *MatchingService) publishRejected(ctx context.Context, err error) {
	domainErr := errorutil.ToDomainError(err)
	s.logger.Info("roster rejected", zap.String("code", domainErr.Code), zap.String("reason", domainErr.Message))
	s.publish(ctx, events.Event{
		Type: events.EventRosterRejected,
		Payload: events.RosterRejectedPayload{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Details: domainErr.Details,
		},
	})
}

func (s *MatchingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
