package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planweave/planweave/config"
	"github.com/planweave/planweave/infra/gcal"
)

var (
	calendarDays  int
	calendarToday bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show calendar meetings matching the customer list",
	RunE:  runCalendar,
}

var calendarAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize calendar access and cache the token",
	RunE:  runCalendarAuth,
}

func init() {
	calendarCmd.Flags().IntVar(&calendarDays, "days", 0, "day window: positive for upcoming, negative for past (default from config)")
	calendarCmd.Flags().BoolVar(&calendarToday, "today", false, "show today as a full day")
	calendarCmd.AddCommand(calendarAuthCmd)
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	days := calendarDays
	if days == 0 {
		days = cfg.Calendar.Days
	}

	svc, err := newService(ctx)
	if err != nil {
		return err
	}
	return svc.RunCalendar(ctx, days, calendarToday)
}

func runCalendarAuth(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return gcal.Authorize(ctx, cfg.Calendar)
}
