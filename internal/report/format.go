// Package report turns raw ERP payloads into the text sections of the
// daily report. Every function is pure and total: a missing or malformed
// payload yields a placeholder line, never an error.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"campus-report-bot/internal/erp"
)

var divider = strings.Repeat("-", 40)

// Timetable renders one block per scheduled period, in the order the ERP
// returned them.
func Timetable(p *erp.TimetablePayload) string {
	if p == nil || len(p.Output.Data) == 0 {
		return "No timetable data available for today"
	}

	var b strings.Builder
	b.WriteString("Today's Timetable:\n\n")

	for _, day := range p.Output.Data {
		if len(day.Periods) == 0 {
			return "No classes scheduled for today"
		}
		for i, period := range day.Periods {
			fmt.Fprintf(&b, "Period %d\n", i+1)
			fmt.Fprintf(&b, "%s\n", blankAs(period.Subject, "Unknown Subject"))
			fmt.Fprintf(&b, "Faculty: %s\n", blankAs(period.Faculty, "Unknown Faculty"))
			fmt.Fprintf(&b, "Room: %s\n", blankAs(period.Room, "TBA"))
			if tr := timeRange(period.Start, period.End); tr != "" {
				fmt.Fprintf(&b, "Time: %s\n", tr)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// Attendance renders the overall and current-month percentages followed
// by the per-subject breakdown.
func Attendance(email string, p *erp.AttendancePayload) string {
	if p == nil || p.Output.Data == nil {
		return email + ": No data available"
	}
	d := p.Output.Data

	var b strings.Builder
	fmt.Fprintf(&b, "Overall Attendance: %s%% (%d/%d)\n", percent(d.OverallPercent), d.OverallPresent, d.OverallTotal)
	fmt.Fprintf(&b, "This Month: %s%% (%d/%d)\n\n", percent(d.CurrentMonthPercent), d.CurrentMonthPresent, d.CurrentMonthTotal)

	if len(d.Subjects) > 0 {
		b.WriteString("Subject Details:\n\n")
		for _, s := range d.Subjects {
			fmt.Fprintf(&b, "%s\n", blankAs(s.Code, "Unknown"))
			fmt.Fprintf(&b, "%s\n", blankAs(s.Name, "Unknown"))
			fmt.Fprintf(&b, "Attendance: %s%% (%d/%d)\n", percent(s.Percent), s.Present, s.Total)
			fmt.Fprintf(&b, "Present: %d, Absent: %d", s.Present, s.Absent)
			if s.Leave > 0 {
				fmt.Fprintf(&b, ", Leave: %d", s.Leave)
			}
			if s.OnDuty > 0 {
				fmt.Fprintf(&b, ", On Duty: %d", s.OnDuty)
			}
			if s.MedicalLeave > 0 {
				fmt.Fprintf(&b, ", Medical Leave: %d", s.MedicalLeave)
			}
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// Menu renders the facility line then each meal slot with its non-empty
// items. Blank items and bare "-" placeholders are dropped.
func Menu(p *erp.MenuPayload) string {
	if p == nil || p.Output.Data == nil {
		return "No cafeteria menu available for today"
	}
	d := p.Output.Data
	if len(d.Meals) == 0 {
		return "No meals scheduled for today"
	}

	var b strings.Builder
	b.WriteString("Today's Cafeteria Menu:\n\n")
	fmt.Fprintf(&b, "Location: %s\n\n", blankAs(d.Facility, "Cafeteria"))

	for _, meal := range d.Meals {
		if meal.Time != "" {
			b.WriteString(meal.Time + "\n")
		}
		for _, item := range strings.Split(meal.Items, "\n") {
			item = strings.TrimSpace(item)
			if item == "" || item == "-" {
				continue
			}
			b.WriteString("  " + item + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// Assemble builds the final report: header, then timetable, attendance
// and menu in that order, separated by the 40-dash divider. The ordering
// and divider width are a contract for anything parsing the report.
func Assemble(now time.Time, email, timetable, attendance, menu string) string {
	header := fmt.Sprintf("Daily Report\nDate: %s\nTime: %s\nEmail: %s\n",
		now.Format("02-01-2006"), now.Format("03:04 PM"), email)
	sep := "\n\n" + divider + "\n\n"
	return header + sep + timetable + sep + attendance + sep + menu
}

// timeRange renders the period window as 12-hour clock times. The ERP
// sends timestamps already in IST civil time, so only the written
// wall-clock digits matter; any zone suffix is ignored. Unparseable
// values fall back to the raw strings.
func timeRange(start, end string) string {
	if start == "" || end == "" {
		return ""
	}
	s, err1 := parseCivil(start)
	e, err2 := parseCivil(end)
	if err1 != nil || err2 != nil {
		return start + " - " + end
	}
	return s.Format("03:04 PM") + " - " + e.Format("03:04 PM")
}

func parseCivil(v string) (time.Time, error) {
	if len(v) >= 19 {
		if t, err := time.Parse("2006-01-02T15:04:05", v[:19]); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, v)
}

func percent(n json.Number) string {
	if n == "" {
		return "0"
	}
	return n.String()
}

func blankAs(v, d string) string {
	if strings.TrimSpace(v) == "" {
		return d
	}
	return v
}
