package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/impact-atlas/pkg/adapters"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/services/insights"
	reportstore "github.com/de-tools/impact-atlas/pkg/store/duckdb/report"
	"github.com/de-tools/impact-atlas/pkg/telemetry"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrReportNotFound = errors.New("report not found")

// Analyzer runs the impact analysis for a pair of consecutive reports
type Analyzer interface {
	AnalyzeImpact(metric domain.Metric, current domain.MonthlyReport, previous *domain.MonthlyReport) (*domain.ImpactAnalysis, error)
}

// TxRunner executes fn atomically
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service interface {
	// Save creates or updates the report. The bool is true when no report with its id existed.
	Save(ctx context.Context, report domain.MonthlyReport) (*domain.MonthlyReport, bool, error)
	SaveAll(ctx context.Context, reports []domain.MonthlyReport) ([]domain.MonthlyReport, error)
	Get(ctx context.Context, id string) (*domain.MonthlyReport, error)
	List(ctx context.Context) ([]domain.MonthlyReport, error)
	Delete(ctx context.Context, id string) error
	Latest(ctx context.Context) (*domain.MonthlyReport, error)
	Previous(ctx context.Context, id string) (*domain.MonthlyReport, error)
	CopyForNextMonth(ctx context.Context, id string) (*domain.MonthlyReport, error)
	// Analyze returns nil without error when the report has no predecessor
	Analyze(ctx context.Context, id string, metric domain.Metric) (*domain.ImpactAnalysis, error)
	Insights(ctx context.Context, id string) (*domain.InsightSummary, error)
}

type Options struct {
	Store    reportstore.Store
	Analyzer Analyzer
	Tx       TxRunner
	Now      func() time.Time
	NewID    func() string
}

type defaultService struct {
	store    reportstore.Store
	analyzer Analyzer
	tx       TxRunner
	now      func() time.Time
	newID    func() string
}

func NewService(opts Options) (Service, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("report store is required")
	}
	if opts.Analyzer == nil {
		return nil, fmt.Errorf("impact analyzer is required")
	}
	if opts.Tx == nil {
		opts.Tx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &defaultService{
		store:    opts.Store,
		analyzer: opts.Analyzer,
		tx:       opts.Tx,
		now:      opts.Now,
		newID:    opts.NewID,
	}, nil
}

func (s *defaultService) Save(ctx context.Context, report domain.MonthlyReport) (*domain.MonthlyReport, bool, error) {
	saved, created, err := s.save(ctx, report)
	if err != nil {
		return nil, false, err
	}
	telemetry.ReportsSavedTotal.Inc()
	return saved, created, nil
}

func (s *defaultService) save(ctx context.Context, report domain.MonthlyReport) (*domain.MonthlyReport, bool, error) {
	logger := zerolog.Ctx(ctx)

	if err := Validate(report); err != nil {
		return nil, false, err
	}

	now := s.now()
	report.CreatedAt = now
	created := true
	if report.ID == "" {
		report.ID = s.newID()
	} else {
		existing, err := s.store.Get(ctx, report.ID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load report %s: %w", report.ID, err)
		}
		if existing != nil {
			report.CreatedAt = existing.CreatedAt
			created = false
		}
	}
	report.UpdatedAt = now
	DeriveMetrics(&report)

	if err := s.store.Upsert(ctx, adapters.MapDomainReportToStore(report)); err != nil {
		return nil, false, fmt.Errorf("failed to save report: %w", err)
	}

	logger.Debug().
		Str("report", report.ID).
		Str("period", report.Period()).
		Bool("created", created).
		Msg("report saved")
	return &report, created, nil
}

// SaveAll saves the batch atomically; reports are counted only once the batch commits
func (s *defaultService) SaveAll(ctx context.Context, reports []domain.MonthlyReport) ([]domain.MonthlyReport, error) {
	saved := make([]domain.MonthlyReport, 0, len(reports))
	err := s.tx(ctx, func(ctx context.Context) error {
		for i, r := range reports {
			result, _, err := s.save(ctx, r)
			if err != nil {
				return fmt.Errorf("report #%d (%s): %w", i+1, r.Period(), err)
			}
			saved = append(saved, *result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	telemetry.ReportsSavedTotal.Add(float64(len(saved)))
	return saved, nil
}

func (s *defaultService) Get(ctx context.Context, id string) (*domain.MonthlyReport, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	report := adapters.MapStoreReportToDomain(*record)
	return &report, nil
}

func (s *defaultService) List(ctx context.Context) ([]domain.MonthlyReport, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]domain.MonthlyReport, 0, len(records))
	for _, record := range records {
		reports = append(reports, adapters.MapStoreReportToDomain(record))
	}
	return reports, nil
}

func (s *defaultService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	zerolog.Ctx(ctx).Debug().Str("report", id).Msg("report deleted")
	return nil
}

func (s *defaultService) Latest(ctx context.Context) (*domain.MonthlyReport, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("%w: no reports recorded yet", ErrReportNotFound)
	}
	latest := reports[len(reports)-1]
	return &latest, nil
}

func (s *defaultService) Previous(ctx context.Context, id string) (*domain.MonthlyReport, error) {
	_, previous, err := s.pair(ctx, id)
	return previous, err
}

// pair returns the report and its chronological predecessor, if any
func (s *defaultService) pair(ctx context.Context, id string) (*domain.MonthlyReport, *domain.MonthlyReport, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	for i := range reports {
		if reports[i].ID != id {
			continue
		}
		if i == 0 {
			return &reports[i], nil, nil
		}
		return &reports[i], &reports[i-1], nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
}

func (s *defaultService) CopyForNextMonth(ctx context.Context, id string) (*domain.MonthlyReport, error) {
	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *source
	next.ID = ""
	next.Notes = ""
	next.CreatedAt = time.Time{}
	next.UpdatedAt = time.Time{}
	next.Month++
	if next.Month > 12 {
		next.Month = 1
		next.Year++
	}
	return &next, nil
}

func (s *defaultService) Analyze(ctx context.Context, id string, metric domain.Metric) (*domain.ImpactAnalysis, error) {
	logger := zerolog.Ctx(ctx)

	if !metric.Valid() {
		return nil, &domain.InvalidMetricError{Metric: string(metric)}
	}

	current, previous, err := s.pair(ctx, id)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzer.AnalyzeImpact(metric, *current, previous)
	if err != nil {
		telemetry.AnalysesTotal.WithLabelValues(metric.String(), telemetry.OutcomeError).Inc()
		logger.Error().
			Err(err).
			Str("report", id).
			Str("metric", metric.String()).
			Msg("impact analysis failed")
		return nil, fmt.Errorf("impact analysis failed: %w", err)
	}

	if analysis == nil {
		telemetry.AnalysesTotal.WithLabelValues(metric.String(), telemetry.OutcomeUnavailable).Inc()
		logger.Info().
			Str("report", id).
			Str("metric", metric.String()).
			Msg("no previous report, analysis unavailable")
		return nil, nil
	}

	telemetry.AnalysesTotal.WithLabelValues(metric.String(), telemetry.OutcomeOK).Inc()
	logger.Debug().
		Str("report", id).
		Str("metric", metric.String()).
		Float64("percent_change", analysis.PercentChange).
		Msg("impact analysis completed")
	return analysis, nil
}

func (s *defaultService) Insights(ctx context.Context, id string) (*domain.InsightSummary, error) {
	current, previous, err := s.pair(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := insights.Compare(*current, previous)
	return &summary, nil
}
