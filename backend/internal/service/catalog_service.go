package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/internal/catalog"
)

// CatalogService exposes the term catalog to the API layer.
type CatalogService interface {
	// Terms lists the available terms, newest first.
	Terms(ctx context.Context) ([]string, error)
	// Courses groups a term's course codes by department prefix.
	Courses(ctx context.Context, term string) (map[string][]string, error)
	// Sections maps a term's course codes to their section ids, eligible
	// sections only.
	Sections(ctx context.Context, term string) (map[string][]string, error)
}

type catalogService struct {
	provider catalog.Provider
	logger   *zap.Logger
}

// NewCatalogService creates a CatalogService over the provider.
func NewCatalogService(provider catalog.Provider, logger *zap.Logger) CatalogService {
	return &catalogService{provider: provider, logger: logger}
}

func (s *catalogService) Terms(ctx context.Context) ([]string, error) {
	terms, err := s.provider.Terms(ctx)
	if err != nil {
		s.logger.Error("listing terms failed", zap.Error(err))
		return nil, err
	}
	if terms == nil {
		terms = []string{}
	}
	return terms, nil
}

func (s *catalogService) Courses(ctx context.Context, term string) (map[string][]string, error) {
	cat, err := s.provider.Load(ctx, term)
	if err != nil {
		s.logger.Error("loading catalog failed", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	return cat.ByPrefix(), nil
}

func (s *catalogService) Sections(ctx context.Context, term string) (map[string][]string, error) {
	cat, err := s.provider.Load(ctx, term)
	if err != nil {
		s.logger.Error("loading catalog failed", zap.String("term", term), zap.Error(err))
		return nil, err
	}

	out := make(map[string][]string)
	for _, course := range cat.Courses() {
		sections, _ := cat.SectionsFor(course)
		codes := make([]string, 0, len(sections))
		for _, sec := range sections {
			codes = append(codes, sec.Code)
		}
		out[course] = codes
	}
	return out, nil
}
