package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dog-playdate-matcher/internal/metrics"
	"dog-playdate-matcher/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrSourceUnavailable = errors.New("candidate source unavailable")
)

type Service struct {
	source     CandidateSource
	sourceName string
	defaults   Options
	log        logger.Logger
	now        func() time.Time
}

// NewService. source puede ser nil: entonces el pool debe venir siempre en el request.
func NewService(source CandidateSource, sourceName string, defaults Options, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	if defaults.MaxDistance <= 0 {
		defaults.MaxDistance = DefaultMaxDistance
	}
	if defaults.MaxResults <= 0 {
		defaults.MaxResults = DefaultMaxResults
	}
	if defaults.Workers <= 0 {
		defaults.Workers = 1
	}
	return &Service{
		source:     source,
		sourceName: sourceName,
		defaults:   defaults,
		log:        log,
		now:        time.Now,
	}
}

type FindInput struct {
	Query Owner
	// Pool nil => se usa el CandidateSource configurado.
	Pool []Owner

	// Overrides opcionales de los defaults del servicio.
	MaxDistance *float64
	MaxResults  *int
}

func (s *Service) Defaults() Options {
	return s.defaults
}

// FindMatches resuelve el pool y corre el pipeline completo.
func (s *Service) FindMatches(ctx context.Context, in FindInput) ([]Recommendation, error) {
	start := s.now()
	runID := uuid.NewString()
	log := s.log.With(map[string]any{"run_id": runID, "owner_id": in.Query.ID})

	if len(in.Query.Dogs) == 0 {
		return nil, ErrInvalidInput
	}

	opts := s.defaults
	if in.MaxDistance != nil {
		opts.MaxDistance = *in.MaxDistance
	}
	if in.MaxResults != nil {
		opts.MaxResults = *in.MaxResults
	}

	pool := in.Pool
	source := "request"
	if pool == nil {
		if s.source == nil {
			return nil, fmt.Errorf("%w: no candidates provided and no source configured", ErrSourceUnavailable)
		}
		source = s.sourceName

		var err error
		pool, err = s.source.ListCandidates(ctx)
		if err != nil {
			metrics.CandidateSourceErrors.WithLabelValues(source).Inc()
			metrics.RecordRun(source, "error", s.now().Sub(start))
			log.Error("candidate source failed", map[string]any{"source": source, "error": err})
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
	}

	recs, st := Run(in.Query, pool, opts)

	for _, ph := range []struct {
		name string
		n    int
	}{
		{"pool", st.Pool},
		{"location", st.Nearby},
		{"availability", st.Available},
		{"compatibility", st.Compatible},
		{"returned", st.Returned},
	} {
		metrics.RecordPhase(ph.name, ph.n)
		log.Debug("phase done", map[string]any{"phase": ph.name, "candidates": ph.n})
	}

	outcome := "matched"
	if len(recs) == 0 {
		outcome = "empty"
	}
	elapsed := s.now().Sub(start)
	metrics.RecordRun(source, outcome, elapsed)

	log.Info("matching finished", map[string]any{
		"source":       source,
		"max_distance": opts.MaxDistance,
		"max_results":  opts.MaxResults,
		"pool":         st.Pool,
		"nearby":       st.Nearby,
		"available":    st.Available,
		"compatible":   st.Compatible,
		"returned":     st.Returned,
		"elapsed_ms":   elapsed.Milliseconds(),
	})

	return recs, nil
}
