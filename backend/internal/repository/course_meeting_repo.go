package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// CourseMeetingRepository is the data access for the course_meetings
// catalog table.
type CourseMeetingRepository interface {
	// ListTerms returns the distinct terms present, newest first.
	ListTerms(ctx context.Context) ([]string, error)
	// ListByTerm returns a term's meeting rows in insertion order.
	ListByTerm(ctx context.Context, term string) ([]model.CourseMeeting, error)
	// ReplaceTerm swaps a term's rows for a fresh import in one
	// transaction: delete old rows, insert the new ones.
	ReplaceTerm(ctx context.Context, term string, rows []model.CourseMeeting) error
}

type courseMeetingRepo struct {
	db *gorm.DB
}

// NewCourseMeetingRepo creates the gorm-backed CourseMeetingRepository.
func NewCourseMeetingRepo(db *gorm.DB) CourseMeetingRepository {
	return &courseMeetingRepo{db: db}
}

func (r *courseMeetingRepo) ListTerms(ctx context.Context) ([]string, error) {
	var terms []string
	err := r.db.WithContext(ctx).
		Model(&model.CourseMeeting{}).
		Distinct("term").
		Order("term DESC").
		Pluck("term", &terms).Error
	return terms, err
}

func (r *courseMeetingRepo) ListByTerm(ctx context.Context, term string) ([]model.CourseMeeting, error) {
	var rows []model.CourseMeeting
	err := r.db.WithContext(ctx).
		Where("term = ?", term).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *courseMeetingRepo) ReplaceTerm(ctx context.Context, term string, rows []model.CourseMeeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("term = ?", term).Delete(&model.CourseMeeting{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}
