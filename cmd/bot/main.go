package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"campus-report-bot/internal/config"
	"campus-report-bot/internal/erp"
	"campus-report-bot/internal/notify"
	"campus-report-bot/internal/orchestrator"
	"campus-report-bot/internal/scheduler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	client := erp.NewClient(cfg.BaseURL)
	notifier := notify.NewSlackNotifier(cfg.SlackBotToken, cfg.SlackChannelID)
	reporter := orchestrator.New(cfg, client, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run immediately on startup, independent of the last-run marker.
	reporter.Run(ctx)

	gate := scheduler.NewGate(
		scheduler.FileMarker{Path: cfg.MarkerFile},
		cfg.TriggerHour, cfg.TriggerMinute,
		func() time.Time { return time.Now().In(erp.IST) },
	)
	sched, err := scheduler.New(erp.IST, gate, func() { reporter.Run(ctx) })
	if err != nil {
		log.Fatalf("Error setting up cron job: %v", err)
	}
	sched.Start()
	log.Println("Scheduler active. Next check in 1 hour...")

	<-ctx.Done()
	log.Println("Shutting down gracefully...")
	sched.Stop()
}
