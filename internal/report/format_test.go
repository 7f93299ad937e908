package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-report-bot/internal/erp"
)

func timetableWith(periods ...erp.Period) *erp.TimetablePayload {
	p := &erp.TimetablePayload{}
	p.Output.Data = []erp.TimetableDay{{Periods: periods}}
	return p
}

func TestTimetableNilPayload(t *testing.T) {
	assert.Equal(t, "No timetable data available for today", Timetable(nil))
	assert.Equal(t, "No timetable data available for today", Timetable(&erp.TimetablePayload{}))
}

func TestTimetableNoPeriods(t *testing.T) {
	assert.Equal(t, "No classes scheduled for today", Timetable(timetableWith()))
}

func TestTimetableRendersPeriods(t *testing.T) {
	out := Timetable(timetableWith(
		erp.Period{Subject: "Data Structures", Faculty: "Dr. Rao", Room: "A-101",
			Start: "2025-01-06T09:00:00", End: "2025-01-06T09:50:00"},
		erp.Period{},
	))
	assert.Contains(t, out, "Today's Timetable:")
	assert.Contains(t, out, "Period 1\nData Structures\nFaculty: Dr. Rao\nRoom: A-101\nTime: 09:00 AM - 09:50 AM")
	assert.Contains(t, out, "Period 2\nUnknown Subject\nFaculty: Unknown Faculty\nRoom: TBA")
}

func TestTimetableZuluTimestampsKeepCivilTime(t *testing.T) {
	out := Timetable(timetableWith(
		erp.Period{Subject: "Maths", Start: "2025-01-06T14:30:00Z", End: "2025-01-06T15:20:00Z"},
	))
	// Timestamps are already IST civil time; the Z must not shift them.
	assert.Contains(t, out, "Time: 02:30 PM - 03:20 PM")
}

func TestTimetableUnparseableTimesFallBackToRaw(t *testing.T) {
	out := Timetable(timetableWith(erp.Period{Subject: "Maths", Start: "morning", End: "noon"}))
	assert.Contains(t, out, "Time: morning - noon")
}

func TestTimetableOmitsTimeWhenMissing(t *testing.T) {
	out := Timetable(timetableWith(erp.Period{Subject: "Maths"}))
	assert.NotContains(t, out, "Time:")
}

func TestAttendanceNilPayload(t *testing.T) {
	assert.Equal(t, "a@b.edu: No data available", Attendance("a@b.edu", nil))
	assert.Equal(t, "a@b.edu: No data available", Attendance("a@b.edu", &erp.AttendancePayload{}))
}

func TestAttendanceRendersSummaryAndSubjects(t *testing.T) {
	p := &erp.AttendancePayload{}
	p.Output.Data = &erp.AttendanceData{
		OverallPercent:      "85.5",
		CurrentMonthPercent: "90",
		OverallPresent:      171,
		OverallTotal:        200,
		CurrentMonthPresent: 18,
		CurrentMonthTotal:   20,
		Subjects: []erp.SubjectAttendance{
			{Code: "CS101", Name: "Programming", Percent: "80", Present: 40, Absent: 10, Total: 50},
			{Code: "MA102", Name: "Calculus", Percent: "95", Present: 19, Absent: 0, OnDuty: 1, Total: 20},
		},
	}
	out := Attendance("a@b.edu", p)
	assert.Contains(t, out, "Overall Attendance: 85.5% (171/200)")
	assert.Contains(t, out, "This Month: 90% (18/20)")
	assert.Contains(t, out, "Subject Details:")
	assert.Contains(t, out, "CS101\nProgramming\nAttendance: 80% (40/50)\nPresent: 40, Absent: 10\n")
	assert.Contains(t, out, "Present: 19, Absent: 0, On Duty: 1")
	assert.NotContains(t, out, "Leave: 0")
	assert.NotContains(t, out, "Medical Leave")
}

func TestAttendanceEmptyPercentagesRenderAsZero(t *testing.T) {
	p := &erp.AttendancePayload{}
	p.Output.Data = &erp.AttendanceData{}
	out := Attendance("a@b.edu", p)
	assert.Contains(t, out, "Overall Attendance: 0% (0/0)")
	assert.Contains(t, out, "This Month: 0% (0/0)")
}

func TestMenuNilPayload(t *testing.T) {
	assert.Equal(t, "No cafeteria menu available for today", Menu(nil))
	assert.Equal(t, "No cafeteria menu available for today", Menu(&erp.MenuPayload{}))
}

func TestMenuNoMeals(t *testing.T) {
	p := &erp.MenuPayload{}
	p.Output.Data = &erp.MenuData{Facility: "Main Mess"}
	assert.Equal(t, "No meals scheduled for today", Menu(p))
}

func TestMenuDropsBlankAndPlaceholderItems(t *testing.T) {
	p := &erp.MenuPayload{}
	p.Output.Data = &erp.MenuData{
		Facility: "Main Mess",
		Meals:    []erp.Meal{{Time: "07:30 AM - 09:30 AM", Items: "Idli\n-\n\nDosa"}},
	}
	out := Menu(p)
	assert.Contains(t, out, "Location: Main Mess")
	assert.Contains(t, out, "  Idli\n  Dosa")
	assert.Equal(t, 2, strings.Count(out, "  "), "exactly two item lines expected")
}

func TestMenuDefaultsFacilityName(t *testing.T) {
	p := &erp.MenuPayload{}
	p.Output.Data = &erp.MenuData{Meals: []erp.Meal{{Time: "Lunch", Items: "Rice"}}}
	assert.Contains(t, Menu(p), "Location: Cafeteria")
}

func TestFormattersAreIdempotent(t *testing.T) {
	tt := timetableWith(erp.Period{Subject: "Maths", Start: "2025-01-06T09:00:00", End: "2025-01-06T09:50:00"})
	require.Equal(t, Timetable(tt), Timetable(tt))

	m := &erp.MenuPayload{}
	m.Output.Data = &erp.MenuData{Meals: []erp.Meal{{Time: "Lunch", Items: "Rice\n-"}}}
	require.Equal(t, Menu(m), Menu(m))

	a := &erp.AttendancePayload{}
	a.Output.Data = &erp.AttendanceData{OverallPercent: "80"}
	require.Equal(t, Attendance("a@b.edu", a), Attendance("a@b.edu", a))
}

func TestAssembleOrderingAndDividers(t *testing.T) {
	now := time.Date(2025, 1, 6, 13, 5, 0, 0, erp.IST)
	out := Assemble(now, "a@b.edu", "TT", "ATT", "MENU")

	assert.True(t, strings.HasPrefix(out, "Daily Report\nDate: 06-01-2025\nTime: 01:05 PM\nEmail: a@b.edu\n"))
	assert.Equal(t, 3, strings.Count(out, strings.Repeat("-", 40)))

	ttIdx := strings.Index(out, "TT")
	attIdx := strings.Index(out, "ATT")
	menuIdx := strings.Index(out, "MENU")
	assert.True(t, ttIdx < attIdx && attIdx < menuIdx, "sections must be timetable, attendance, menu")
}
