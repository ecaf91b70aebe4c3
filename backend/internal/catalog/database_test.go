package catalog

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// fakeMeetingStore is an in-memory MeetingStore.
type fakeMeetingStore struct {
	rows []model.CourseMeeting
}

func (s *fakeMeetingStore) ListTerms(_ context.Context) ([]string, error) {
	var terms []string
	seen := make(map[string]struct{})
	for _, r := range s.rows {
		if _, ok := seen[r.Term]; !ok {
			seen[r.Term] = struct{}{}
			terms = append(terms, r.Term)
		}
	}
	// Newest first, same contract as the repository.
	for i, j := 0, len(terms)-1; i < j; i, j = i+1, j-1 {
		terms[i], terms[j] = terms[j], terms[i]
	}
	return terms, nil
}

func (s *fakeMeetingStore) ListByTerm(_ context.Context, term string) ([]model.CourseMeeting, error) {
	var out []model.CourseMeeting
	for _, r := range s.rows {
		if r.Term == term {
			out = append(out, r)
		}
	}
	return out, nil
}

func strp(s string) *string { return &s }

func TestDBProviderLoad(t *testing.T) {
	store := &fakeMeetingStore{rows: []model.CourseMeeting{
		{Term: "2023-2024 Spring", CourseCode: "OLD 1000", SectionCode: "1",
			DayOfWeek: strp("Monday"), StartTime: strp("08:40"), EndTime: strp("09:30")},
		{Term: "2024-2025 Spring", CourseCode: "COMP 1202", SectionCode: "1",
			DayOfWeek: strp("PAZARTESİ"), StartTime: strp("08:40"), EndTime: strp("09:30"), Classroom: strp("C101")},
		{Term: "2024-2025 Spring", CourseCode: "COMP 1202", SectionCode: "2",
			DayOfWeek: nil, StartTime: nil, EndTime: nil},
		{Term: "2024-2025 Spring", CourseCode: "MATH 1131", SectionCode: "1",
			DayOfWeek: strp("Friday"), StartTime: strp("13:40"), EndTime: strp("14:30")},
	}}

	p := NewDBProvider(store, zap.NewNop())
	cat, err := p.Load(context.Background(), "2024-2025 Spring")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cat.Courses(); !reflect.DeepEqual(got, []string{"COMP 1202", "MATH 1131"}) {
		t.Errorf("Courses = %v", got)
	}
	comp, _ := cat.SectionsFor("COMP 1202")
	if len(comp) != 1 || comp[0].Code != "1" {
		t.Errorf("incomplete section should be dropped, got %+v", comp)
	}
	if comp[0].Meetings[0].Day != model.Monday {
		t.Errorf("registrar day names should normalize, got %s", comp[0].Meetings[0].Day)
	}
	if comp[0].Meetings[0].Classroom != "C101" {
		t.Errorf("Classroom = %q", comp[0].Meetings[0].Classroom)
	}
}

func TestDBProviderFallsBackToLatestTerm(t *testing.T) {
	store := &fakeMeetingStore{rows: []model.CourseMeeting{
		{Term: "2024-2025 Spring", CourseCode: "COMP 1202", SectionCode: "1",
			DayOfWeek: strp("Monday"), StartTime: strp("08:40"), EndTime: strp("09:30")},
	}}

	p := NewDBProvider(store, zap.NewNop())
	cat, err := p.Load(context.Background(), "1999-2000 Spring")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Term() != "2024-2025 Spring" {
		t.Errorf("Term = %q, want fallback to latest", cat.Term())
	}
}

func TestDBProviderNoDataAtAll(t *testing.T) {
	p := NewDBProvider(&fakeMeetingStore{}, zap.NewNop())
	if _, err := p.Load(context.Background(), ""); err != ErrNoTermData {
		t.Errorf("Load = %v, want ErrNoTermData", err)
	}
}
