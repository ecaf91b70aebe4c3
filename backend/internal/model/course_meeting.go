package model

import "time"

// CourseMeeting is one catalog row in the course_meetings table: a single
// weekly meeting of one course section within a term. Rows with a NULL
// day or time are kept in storage but dropped when the section is built,
// matching the file catalog's eligibility rule.
type CourseMeeting struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"           json:"id"`
	Term        string    `gorm:"type:varchar(50);not null;index"    json:"term"`
	CourseCode  string    `gorm:"type:varchar(50);not null"          json:"course_code"`
	SectionCode string    `gorm:"type:varchar(20);not null"          json:"section_code"`
	DayOfWeek   *string   `gorm:"type:varchar(10)"                   json:"day_of_week,omitempty"`
	StartTime   *string   `gorm:"type:varchar(5)"                    json:"start_time,omitempty"`
	EndTime     *string   `gorm:"type:varchar(5)"                    json:"end_time,omitempty"`
	Classroom   *string   `gorm:"type:varchar(100)"                  json:"classroom,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()"             json:"created_at"`
}

// TableName sets the table name.
func (CourseMeeting) TableName() string { return "course_meetings" }
