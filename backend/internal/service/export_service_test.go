package service

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/internal/dto"
	"github.com/arvemy/YUScheduler/backend/internal/model"
)

func exportRequest() *dto.ExportScheduleRequest {
	return &dto.ExportScheduleRequest{
		Term: "2024-2025 Spring",
		Schedule: dto.ScheduleResponse{
			Sections: []dto.ScheduleSectionResponse{
				{
					Course:  "MATH 1131",
					Section: "1",
					Meetings: []dto.MeetingResponse{
						{Day: "Monday", StartTime: "08:40", EndTime: "10:30", Classroom: "C101"},
						{Day: "Wednesday", StartTime: "13:40", EndTime: "14:30", Classroom: "C101"},
					},
				},
				{
					Course:  "COMP 1202",
					Section: "3",
					Meetings: []dto.MeetingResponse{
						{Day: "Friday", StartTime: "10:40", EndTime: "12:30", Classroom: "B204"},
					},
				},
			},
		},
	}
}

func TestExportXLSX(t *testing.T) {
	svc := NewExportService(zap.NewNop())

	buf, filename, err := svc.ExportXLSX(exportRequest())
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook buffer is empty")
	}
	if filename != "yu-schedule-2024-2025-spring.xlsx" {
		t.Errorf("filename = %q", filename)
	}
	// xlsx files are zip archives.
	if head := buf.Bytes()[:2]; head[0] != 'P' || head[1] != 'K' {
		t.Errorf("buffer does not start with zip magic: %q", head)
	}
}

func TestExportICS(t *testing.T) {
	svc := NewExportService(zap.NewNop())

	buf, filename, err := svc.ExportICS(exportRequest())
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	if filename != "yu-schedule-2024-2025-spring.ics" {
		t.Errorf("filename = %q", filename)
	}

	body := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"MATH 1131 (Section 1)",
		"COMP 1202 (Section 3)",
		"RRULE:FREQ=WEEKLY",
		"LOCATION:B204",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("calendar missing %q", want)
		}
	}
	// One event per meeting, not per section.
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("expected 3 events, got %d", got)
	}
}

func TestExportCellBoundaries(t *testing.T) {
	// A meeting ending exactly when a slot starts must not occupy that
	// slot: the grid uses the same half-open overlap as conflict checks.
	m := exportMeeting{
		course:  "MATH 1131",
		section: "1",
		day:     model.Monday,
		start:   mustClock(t, "08:40"),
		end:     mustClock(t, "09:40"),
	}

	first, _ := model.ParseSlotLabel("08:40-09:30")
	if got := cellText([]exportMeeting{m}, model.Monday, first); got == "" {
		t.Error("meeting must occupy the slot it spans")
	}
	next, _ := model.ParseSlotLabel("09:40-10:30")
	if got := cellText([]exportMeeting{m}, model.Monday, next); got != "" {
		t.Errorf("meeting ending at the slot start must not occupy it, got %q", got)
	}
}

func mustClock(t *testing.T, s string) model.MinuteOfDay {
	t.Helper()
	m, err := model.ParseClock(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestExportRejectsInvalidSchedule(t *testing.T) {
	svc := NewExportService(zap.NewNop())

	cases := []struct {
		name string
		req  *dto.ExportScheduleRequest
	}{
		{"empty schedule", &dto.ExportScheduleRequest{}},
		{"bad day", &dto.ExportScheduleRequest{Schedule: dto.ScheduleResponse{
			Sections: []dto.ScheduleSectionResponse{{
				Course: "MATH 1131", Section: "1",
				Meetings: []dto.MeetingResponse{{Day: "Funday", StartTime: "08:40", EndTime: "09:30"}},
			}},
		}}},
		{"bad time", &dto.ExportScheduleRequest{Schedule: dto.ScheduleResponse{
			Sections: []dto.ScheduleSectionResponse{{
				Course: "MATH 1131", Section: "1",
				Meetings: []dto.MeetingResponse{{Day: "Monday", StartTime: "morning", EndTime: "09:30"}},
			}},
		}}},
		{"end before start", &dto.ExportScheduleRequest{Schedule: dto.ScheduleResponse{
			Sections: []dto.ScheduleSectionResponse{{
				Course: "MATH 1131", Section: "1",
				Meetings: []dto.MeetingResponse{{Day: "Monday", StartTime: "10:40", EndTime: "09:30"}},
			}},
		}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.ExportXLSX(tc.req); !errors.Is(err, ErrExportInvalidSchedule) {
				t.Errorf("ExportXLSX: expected ErrExportInvalidSchedule, got %v", err)
			}
			if _, _, err := svc.ExportICS(tc.req); !errors.Is(err, ErrExportInvalidSchedule) {
				t.Errorf("ExportICS: expected ErrExportInvalidSchedule, got %v", err)
			}
		})
	}
}
