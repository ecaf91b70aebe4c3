package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// TermWriter is the slice of the repository layer term imports need;
// internal/repository's CourseMeetingRepository satisfies it.
type TermWriter interface {
	ReplaceTerm(ctx context.Context, term string, rows []model.CourseMeeting) error
}

// ImportTermFile loads one term JSON file into the store, replacing any
// rows the term already has. Rows are stored as the file carries them,
// nulls included; day normalization and eligibility filtering happen on
// read, so the file and database sources stay interchangeable. Returns
// the term name and the number of rows written.
func ImportTermFile(ctx context.Context, path string, store TermWriter) (string, int, error) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, termSuffix) {
		return "", 0, fmt.Errorf("term file %s: name must end in %q", name, termSuffix)
	}
	term := termNameFromFile(name)

	raw, err := readTermFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("reading term file %s: %w", path, err)
	}

	rows := make([]model.CourseMeeting, 0, len(raw))
	for _, r := range raw {
		var classroom *string
		if r.Classroom != "" {
			c := r.Classroom
			classroom = &c
		}
		rows = append(rows, model.CourseMeeting{
			Term:        term,
			CourseCode:  r.Course,
			SectionCode: r.Section,
			DayOfWeek:   r.Day,
			StartTime:   r.Start,
			EndTime:     r.End,
			Classroom:   classroom,
		})
	}

	if err := store.ReplaceTerm(ctx, term, rows); err != nil {
		return "", 0, fmt.Errorf("replacing term %s: %w", term, err)
	}
	return term, len(rows), nil
}
