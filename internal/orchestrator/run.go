// Package orchestrator sequences one report run: login, fetch, format,
// deliver.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"time"

	"campus-report-bot/internal/config"
	"campus-report-bot/internal/erp"
	"campus-report-bot/internal/notify"
	"campus-report-bot/internal/report"
)

type Reporter struct {
	erp      *erp.Client
	notifier notify.Notifier
	email    string
	password string
	now      func() time.Time
}

func New(cfg config.Config, client *erp.Client, notifier notify.Notifier) *Reporter {
	return &Reporter{
		erp:      client,
		notifier: notifier,
		email:    cfg.Email,
		password: cfg.Password,
		now:      func() time.Time { return time.Now().In(erp.IST) },
	}
}

// Run executes one report run end to end. Login and attendance failures
// abort the run and notify the channel; timetable and menu failures
// degrade to placeholder sections; a delivery failure is logged and the
// run still counts as complete.
func (r *Reporter) Run(ctx context.Context) {
	log.Printf("Processing: %s", r.email)

	session, err := r.erp.Login(ctx, r.email, r.password)
	if err != nil {
		log.Printf("Login error for %s: %v", r.email, err)
		r.notifyFailure(ctx, "Login failed")
		return
	}
	log.Println("Logged in successfully")

	attendance, err := session.FetchAttendance(ctx)
	if err != nil {
		log.Printf("Failed to fetch attendance data: %v", err)
		r.notifyFailure(ctx, "Failed to fetch data")
		return
	}
	log.Println("Attendance data fetched")

	now := r.now()

	timetableText := "No timetable available"
	if timetable, err := session.FetchTimetable(ctx, now); err != nil {
		log.Printf("Failed to fetch timetable data: %v", err)
	} else {
		log.Println("Timetable data fetched")
		timetableText = report.Timetable(timetable)
	}

	menuText := "No cafeteria menu available"
	if menu, err := session.FetchMenu(ctx, now); err != nil {
		log.Printf("Failed to fetch cafeteria menu: %v", err)
	} else {
		log.Println("Cafeteria menu fetched")
		menuText = report.Menu(menu)
	}

	attendanceText := report.Attendance(r.email, attendance)

	full := report.Assemble(now, r.email, timetableText, attendanceText, menuText)
	log.Printf("DAILY REPORT\n\n%s", full)

	if err := r.notifier.Send(ctx, full); err != nil {
		log.Printf("Failed to send report: %v", err)
		return
	}
	log.Println("Daily report completed successfully")
}

func (r *Reporter) notifyFailure(ctx context.Context, reason string) {
	msg := fmt.Sprintf("Daily Attendance Report Failed\n\nEmail: %s\nError: %s", r.email, reason)
	if err := r.notifier.Send(ctx, msg); err != nil {
		log.Printf("Failed to send failure notification: %v", err)
	}
}
