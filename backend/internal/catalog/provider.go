package catalog

import (
	"context"
	"errors"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// ErrNoTermData means no term data exists at all, in any term. A term that
// merely has no courses is not an error: it loads as an empty catalog and
// the engine answers with its terminal warning.
var ErrNoTermData = errors.New("no course data available for any term")

// Provider loads read-only term catalogs. Implementations must return
// consistent data within one request; the returned catalog is immutable
// and may be shared by concurrent requests.
type Provider interface {
	// Terms lists the available term names, newest first.
	Terms(ctx context.Context) ([]string, error)
	// Load returns the catalog for a term. An empty term means the latest
	// available; a term with no data of its own falls back to the latest
	// as well, mirroring how the term files have always been served.
	Load(ctx context.Context, term string) (*model.Catalog, error)
}

// dayNames maps the registrar's Turkish day names (with their common
// spelling and casing variants) to canonical English weekdays. Unknown
// names pass through untouched and fail weekday validation later.
var dayNames = map[string]model.Weekday{
	"PAZARTESİ": model.Monday, "PAZARTESI": model.Monday, "pazartesi": model.Monday,
	"SALI": model.Tuesday, "sali": model.Tuesday,
	"ÇARŞAMBA": model.Wednesday, "ÇARSAMBA": model.Wednesday,
	"çarşamba": model.Wednesday, "çarsamba": model.Wednesday,
	"PERŞEMBE": model.Thursday, "PERSEMBE": model.Thursday,
	"perşembe": model.Thursday, "persembe": model.Thursday,
	"CUMA": model.Friday, "cuma": model.Friday,
	"CUMARTESİ": model.Saturday, "CUMARTESI": model.Saturday, "cumartesi": model.Saturday,
	"PAZAR": model.Sunday, "pazar": model.Sunday,
}

// normalizeDay translates a raw day name to its canonical English form.
func normalizeDay(raw string) string {
	if d, ok := dayNames[raw]; ok {
		return string(d)
	}
	return raw
}

// rawMeeting is one meeting row as a source stores it, before eligibility
// filtering. Nil pointers are the source's way of saying "not scheduled".
type rawMeeting struct {
	Course    string
	Section   string
	Day       *string
	Start     *string
	End       *string
	Classroom string
}

// buildCatalog groups raw meetings into sections and keeps only eligible
// ones: a section qualifies when every one of its meetings carries a day,
// a start and an end that parse cleanly. Course and section order follow
// the source's declared order.
func buildCatalog(term string, rows []rawMeeting) *model.Catalog {
	type sectionKey struct{ course, section string }

	var order []sectionKey
	grouped := make(map[sectionKey][]rawMeeting)
	for _, r := range rows {
		k := sectionKey{course: r.Course, section: r.Section}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], r)
	}

	var sections []model.Section
	for _, k := range order {
		meetings, ok := buildMeetings(grouped[k])
		if !ok {
			continue
		}
		sections = append(sections, model.Section{
			Course:   k.course,
			Code:     k.section,
			Meetings: meetings,
		})
	}
	return model.NewCatalog(term, sections)
}

func buildMeetings(rows []rawMeeting) ([]model.Meeting, bool) {
	meetings := make([]model.Meeting, 0, len(rows))
	for _, r := range rows {
		if r.Day == nil || r.Start == nil || r.End == nil {
			return nil, false
		}
		day, err := model.ParseWeekday(normalizeDay(*r.Day))
		if err != nil {
			return nil, false
		}
		m, err := model.NewMeeting(day, *r.Start, *r.End, r.Classroom)
		if err != nil {
			return nil, false
		}
		meetings = append(meetings, m)
	}
	return meetings, true
}

var (
	_ Provider = (*FileProvider)(nil)
	_ Provider = (*DBProvider)(nil)
	_ Provider = (*Cache)(nil)
)
