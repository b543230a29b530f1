package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

const (
	minYear = 1970
	maxYear = 9999
)

type statsRepo interface {
	ApprovedBuckets(ctx context.Context, year int, dim domain.StatsDimension) ([]domain.StatsBucket, error)
}

type authorizer interface {
	Check(actor domain.Actor, op access.Operation) error
}

// Service builds the yearly reporting projection.
type Service struct {
	log    *slog.Logger
	repo   statsRepo
	access authorizer
}

// NewService creates a new stats service instance.
func NewService(logger *slog.Logger, repo statsRepo, access authorizer) *Service {
	return &Service{
		log:    logger.With("service", "stats"),
		repo:   repo,
		access: access,
	}
}

// ReportInput selects the projection.
type ReportInput struct {
	Year      int
	Dimension domain.StatsDimension
	WithShare bool
	WithTrend bool
}

func (i ReportInput) Validate() error {
	var errs []domain.FieldError
	if i.Year < minYear || i.Year > maxYear {
		errs = append(errs, domain.FieldError{Field: "year", Message: fmt.Sprintf("must be between %d and %d", minYear, maxYear)})
	}
	if !i.Dimension.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dimension", Message: "must be industry or region"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Report counts APPROVED applications reviewed in the year per group.
func (s *Service) Report(ctx context.Context, input ReportInput) (*domain.StatsReport, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := s.access.Check(actor, access.StatsRead); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	buckets, err := s.repo.ApprovedBuckets(ctx, input.Year, input.Dimension)
	if err != nil {
		return nil, fmt.Errorf("stats.Report: %w", err)
	}

	report := BuildReport(input, buckets)
	s.log.DebugContext(ctx, "stats report built",
		slog.Int("year", input.Year),
		slog.String("dimension", string(input.Dimension)),
		slog.Int("groups", len(report.Groups)),
	)
	return report, nil
}

// BuildReport folds raw buckets into per-group totals ordered by group name.
// Share is the group's fraction of the yearly total, 0 when the total is 0.
// Monthly always has twelve entries when requested.
func BuildReport(input ReportInput, buckets []domain.StatsBucket) *domain.StatsReport {
	byGroup := map[string]*domain.StatsGroup{}
	var months map[string]*[12]domain.MonthlyStat
	if input.WithTrend {
		months = map[string]*[12]domain.MonthlyStat{}
	}
	total := 0

	for _, b := range buckets {
		if !b.Type.IsValid() {
			continue
		}
		g, ok := byGroup[b.Group]
		if !ok {
			g = &domain.StatsGroup{Group: b.Group}
			byGroup[b.Group] = g
		}
		if b.Type == domain.ApplicationTypeDefault {
			g.DefaultCount += b.Count
		} else {
			g.RebirthCount += b.Count
		}
		total += b.Count

		if months != nil && b.Month >= 1 && b.Month <= 12 {
			m, ok := months[b.Group]
			if !ok {
				m = &[12]domain.MonthlyStat{}
				for i := range m {
					m[i].Month = i + 1
				}
				months[b.Group] = m
			}
			if b.Type == domain.ApplicationTypeDefault {
				m[b.Month-1].DefaultCount += b.Count
			} else {
				m[b.Month-1].RebirthCount += b.Count
			}
		}
	}

	groups := make([]domain.StatsGroup, 0, len(byGroup))
	for name, g := range byGroup {
		if input.WithShare {
			share := 0.0
			if total > 0 {
				share = float64(g.DefaultCount+g.RebirthCount) / float64(total)
			}
			g.Share = &share
		}
		if months != nil {
			if m, ok := months[name]; ok {
				g.Monthly = m[:]
			}
		}
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Group < groups[j].Group })

	return &domain.StatsReport{
		Year:      input.Year,
		Dimension: input.Dimension,
		Total:     total,
		Groups:    groups,
	}
}
