package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/arvemy/YUScheduler/backend/internal/dto"
	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// ── Export module business errors ──

var (
	ErrExportInvalidSchedule = errors.New("exported schedule is invalid")
	ErrExportGenerateFailed  = errors.New("generating export file failed")
)

// ExportService serializes a generated schedule for download. The client
// sends the chosen schedule back; the server is stateless between requests
// so there is nothing to look it up by.
type ExportService interface {
	// ExportXLSX renders the schedule as a weekly timetable workbook.
	// Returns the file content and a suggested filename.
	ExportXLSX(req *dto.ExportScheduleRequest) (*bytes.Buffer, string, error)
	// ExportICS renders the schedule as an iCalendar of weekly events.
	ExportICS(req *dto.ExportScheduleRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(logger *zap.Logger) ExportService {
	return &exportService{logger: logger}
}

// exportMeeting is one schedule meeting with its times parsed back from
// the response strings.
type exportMeeting struct {
	course    string
	section   string
	day       model.Weekday
	start     model.MinuteOfDay
	end       model.MinuteOfDay
	classroom string
}

func parseExportMeetings(req *dto.ExportScheduleRequest) ([]exportMeeting, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportInvalidSchedule, err)
	}

	var meetings []exportMeeting
	for _, sec := range req.Schedule.Sections {
		for _, m := range sec.Meetings {
			day, err := model.ParseWeekday(m.Day)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrExportInvalidSchedule, err)
			}
			start, err := model.ParseClock(m.StartTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrExportInvalidSchedule, err)
			}
			end, err := model.ParseClock(m.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrExportInvalidSchedule, err)
			}
			if start >= end {
				return nil, fmt.Errorf("%w: meeting start %s is not before end %s", ErrExportInvalidSchedule, m.StartTime, m.EndTime)
			}
			meetings = append(meetings, exportMeeting{
				course:    sec.Course,
				section:   sec.Section,
				day:       day,
				start:     start,
				end:       end,
				classroom: m.Classroom,
			})
		}
	}
	return meetings, nil
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX: weekly timetable workbook
// ═══════════════════════════════════════════════════════════
//
// Layout: one sheet, slot labels down column A, the used weekdays across
// the header row, "COURSE (Section N)" plus the classroom in each cell a
// meeting touches.

func (s *exportService) ExportXLSX(req *dto.ExportScheduleRequest) (*bytes.Buffer, string, error) {
	meetings, err := parseExportMeetings(req)
	if err != nil {
		return nil, "", err
	}

	days := usedExportDays(meetings)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		s.logger.Error("renaming sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}

	if err := f.SetCellValue(sheet, "A1", "Time"); err != nil {
		return nil, "", ErrExportGenerateFailed
	}
	for i, day := range days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		if err := f.SetCellValue(sheet, cell, string(day)); err != nil {
			return nil, "", ErrExportGenerateFailed
		}
	}

	for row, slot := range model.CanonicalSlots {
		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		if err := f.SetCellValue(sheet, cell, slot.Label); err != nil {
			return nil, "", ErrExportGenerateFailed
		}
		for col, day := range days {
			text := cellText(meetings, day, slot)
			if text == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+2, row+2)
			if err := f.SetCellValue(sheet, cell, text); err != nil {
				return nil, "", ErrExportGenerateFailed
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	if len(days) > 0 {
		last, _ := excelize.ColumnNumberToName(len(days) + 1)
		_ = f.SetColWidth(sheet, "B", last, 28)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("writing workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	return buf, exportFilename(req.Term, "xlsx"), nil
}

func cellText(meetings []exportMeeting, day model.Weekday, slot model.Slot) string {
	var parts []string
	for _, m := range meetings {
		if m.day != day {
			continue
		}
		if model.Overlaps(m.start, m.end, slot.Start, slot.End) {
			text := fmt.Sprintf("%s (Section %s)", m.course, m.section)
			if m.classroom != "" {
				text += "\n" + m.classroom
			}
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func usedExportDays(meetings []exportMeeting) []model.Weekday {
	present := make(map[model.Weekday]struct{})
	for _, m := range meetings {
		present[m.day] = struct{}{}
	}
	var days []model.Weekday
	for _, d := range model.WeekOrder {
		if _, ok := present[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// ═══════════════════════════════════════════════════════════
// ExportICS: iCalendar of weekly events
// ═══════════════════════════════════════════════════════════
//
// Each meeting becomes one weekly-recurring VEVENT anchored on the next
// occurrence of its weekday.

func (s *exportService) ExportICS(req *dto.ExportScheduleRequest) (*bytes.Buffer, string, error) {
	meetings, err := parseExportMeetings(req)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//YU Scheduler//EN")

	now := time.Now()
	for _, m := range meetings {
		start := nextOccurrence(now, m.day, m.start)
		end := start.Add(time.Duration(m.end-m.start) * time.Minute)

		event := cal.AddEvent(uuid.NewString())
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s (Section %s)", m.course, m.section))
		if m.classroom != "" {
			event.SetLocation(m.classroom)
		}
		event.AddRrule("FREQ=WEEKLY")
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, exportFilename(req.Term, "ics"), nil
}

// nextOccurrence finds the first date on or after now falling on the given
// weekday, at the given time of day.
func nextOccurrence(now time.Time, day model.Weekday, at model.MinuteOfDay) time.Time {
	target := weekdayToGo(day)
	date := time.Date(now.Year(), now.Month(), now.Day(), int(at)/60, int(at)%60, 0, 0, now.Location())
	for date.Weekday() != target || date.Before(now) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func weekdayToGo(day model.Weekday) time.Weekday {
	switch day {
	case model.Monday:
		return time.Monday
	case model.Tuesday:
		return time.Tuesday
	case model.Wednesday:
		return time.Wednesday
	case model.Thursday:
		return time.Thursday
	case model.Friday:
		return time.Friday
	case model.Saturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

func exportFilename(term, ext string) string {
	name := "yu-schedule"
	if term != "" {
		slug := strings.ToLower(strings.ReplaceAll(term, " ", "-"))
		name += "-" + slug
	}
	return name + "." + ext
}
