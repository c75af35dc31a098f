// Command dailybrief fetches weather, news, and a word of the day, renders
// them into an HTML email, and delivers it over SMTP. By default it performs
// one run and exits; with a cron schedule it keeps running and sends the
// briefing on that schedule.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/mehdireddad/dailybrief/internal/config"
	"github.com/mehdireddad/dailybrief/internal/templates"
	"github.com/mehdireddad/dailybrief/pkg/briefing"
	"github.com/mehdireddad/dailybrief/pkg/logger"
	"github.com/mehdireddad/dailybrief/pkg/mailer"
	"github.com/mehdireddad/dailybrief/pkg/mailer/smtp"
	"github.com/mehdireddad/dailybrief/pkg/news"
	"github.com/mehdireddad/dailybrief/pkg/weather"
	"github.com/mehdireddad/dailybrief/pkg/wordnik"
)

func main() {
	schedule := flag.String("schedule", "", "cron expression; when set, send the briefing on this schedule instead of once")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *schedule == "" {
		*schedule = cfg.Schedule
	}

	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *schedule == "" {
		if err := run(ctx, cfg, log); err != nil {
			log.Error("briefing run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(*schedule, func() {
		if err := run(ctx, cfg, log); err != nil {
			log.Error("briefing run failed", "error", err)
		}
	}); err != nil {
		log.Error("invalid schedule", "schedule", *schedule, "error", err)
		os.Exit(1)
	}

	log.Info("scheduler started", "schedule", *schedule)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	log.Info("scheduler stopped")
}

// run performs one briefing cycle: fetch, render, deliver. Source failures
// degrade into the email body; only delivery problems surface as errors, and
// missing delivery credentials skip that step entirely.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Info("fetching data for the daily briefing", "cities", cfg.Cities)

	b := briefing.Collect(ctx, briefing.Sources{
		Weather: weather.New(cfg.OpenWeatherKey),
		News:    news.New(cfg.NewsAPIKey),
		Word:    wordnik.New(cfg.WordnikKey),
	}, cfg.Cities)

	if !cfg.DeliveryConfigured() {
		log.Warn("email credentials not set, skipping delivery")
		return nil
	}

	m := mailer.New(smtp.New(cfg.SMTP), mailer.NewRenderer(templates.FS), cfg.Mailer)

	log.Info("sending email", "to", cfg.Recipient)
	err := m.Send(ctx, mailer.SendParams{
		To:       cfg.Recipient,
		Template: "briefing.html",
		Data:     b.View(),
		From:     mailer.Recipient(cfg.SenderName, cfg.SMTP.Username),
	})
	switch {
	case errors.Is(err, mailer.ErrAuthFailed):
		log.Error("smtp authentication failed, check your email/password or app password")
		return err
	case err != nil:
		log.Error("an error occurred while sending the email", "error", err)
		return err
	}

	log.Info("email sent successfully")
	return nil
}
