package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// MeetingStore is the slice of the repository layer the database provider
// needs; internal/repository's CourseMeetingRepository satisfies it.
type MeetingStore interface {
	ListTerms(ctx context.Context) ([]string, error)
	ListByTerm(ctx context.Context, term string) ([]model.CourseMeeting, error)
}

// DBProvider serves term catalogs from the course_meetings table. It
// applies the same eligibility and day-name rules as the file provider, so
// the engine sees identical catalogs whichever source is configured.
type DBProvider struct {
	store  MeetingStore
	logger *zap.Logger
}

// NewDBProvider creates a DBProvider over the meeting store.
func NewDBProvider(store MeetingStore, logger *zap.Logger) *DBProvider {
	return &DBProvider{store: store, logger: logger}
}

// Terms lists the stored terms, newest first.
func (p *DBProvider) Terms(ctx context.Context) ([]string, error) {
	terms, err := p.store.ListTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}
	return terms, nil
}

// Load reads one term's catalog. An empty or unknown term falls back to
// the latest stored term, mirroring the file provider.
func (p *DBProvider) Load(ctx context.Context, term string) (*model.Catalog, error) {
	resolved := term
	var rows []model.CourseMeeting

	if resolved != "" {
		var err error
		rows, err = p.store.ListByTerm(ctx, resolved)
		if err != nil {
			return nil, fmt.Errorf("loading term %s: %w", resolved, err)
		}
	}

	if len(rows) == 0 {
		terms, err := p.store.ListTerms(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing terms: %w", err)
		}
		if len(terms) == 0 {
			return nil, ErrNoTermData
		}
		if term != "" && term != terms[0] {
			p.logger.Warn("term has no stored data, falling back to latest",
				zap.String("term", term),
				zap.String("fallback", terms[0]))
		}
		resolved = terms[0]
		rows, err = p.store.ListByTerm(ctx, resolved)
		if err != nil {
			return nil, fmt.Errorf("loading term %s: %w", resolved, err)
		}
	}

	raw := make([]rawMeeting, 0, len(rows))
	for _, r := range rows {
		classroom := ""
		if r.Classroom != nil {
			classroom = *r.Classroom
		}
		raw = append(raw, rawMeeting{
			Course:    r.CourseCode,
			Section:   r.SectionCode,
			Day:       r.DayOfWeek,
			Start:     r.StartTime,
			End:       r.EndTime,
			Classroom: classroom,
		})
	}
	return buildCatalog(resolved, raw), nil
}
