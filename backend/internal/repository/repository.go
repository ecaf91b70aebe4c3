package repository

import "gorm.io/gorm"

// Repository aggregates the data-access interfaces.
type Repository struct {
	CourseMeeting CourseMeetingRepository
}

// NewRepository wires the gorm-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		CourseMeeting: NewCourseMeetingRepo(db),
	}
}
