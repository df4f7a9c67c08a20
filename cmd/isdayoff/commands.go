package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/isdayoff/internal/calendar"
	"github.com/username/isdayoff/pkg/dateutil"
	"github.com/username/isdayoff/pkg/isdayoff"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentChecks = 4

func todayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the status of today's date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// One clock read labels and queries the same date
			today := isdayoff.SystemClock{}.Today()

			day, err := a.cal.GetDayInfo(cmd.Context(), today.Time())
			if err != nil {
				return fmt.Errorf("failed to query today: %w", err)
			}

			printDay(cmd.OutOrStdout(), *day)
			return nil
		},
	}
}

func dateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "date DATE",
		Short: "Show the status of a single date (YYYY-MM-DD, DD.MM.YYYY or YYYYMMDD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			day, err := a.cal.GetDayInfo(cmd.Context(), date)
			if err != nil {
				return err
			}

			printDay(cmd.OutOrStdout(), *day)
			return nil
		},
	}
}

func monthCmd(a *app) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show every day of a month (defaults to the current one)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.Today()
			if !cmd.Flags().Changed("year") {
				year = today.Year()
			}
			if !cmd.Flags().Changed("month") {
				month = int(today.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", month)
			}

			info, err := a.cal.GetMonthInfo(cmd.Context(), year, time.Month(month))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "📅 %s %d\n", time.Month(month), year)
			printDays(w, info)
			printSummary(w, info)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")

	return cmd
}

func yearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year YYYY",
		Short: "Show per-month statistics for a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}

			info, err := a.cal.GetYearInfo(cmd.Context(), year)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "📅 %d\n", year)
			fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
			fmt.Fprintln(w, "  Month      | Work | Short | Weekend | Holiday | Hours")
			fmt.Fprintln(w, "-------------+------+-------+---------+---------+------")
			for _, m := range info.SplitByMonth() {
				fmt.Fprintf(w, "  %-10s | %4d | %5d | %7d | %7d | %5d\n",
					m.Start.Month(), m.WorkDays, m.ShortDays, m.Weekends, m.Holidays, m.WorkingHours)
			}
			printSummary(w, info)
			return nil
		},
	}
}

func periodCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "period START END",
		Short: "Show every day from START to END inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}
			end, err := dateutil.ParseDate(args[1])
			if err != nil {
				return err
			}

			info, err := a.cal.GetPeriodInfo(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "📅 %s .. %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
			printDays(w, info)
			printSummary(w, info)
			return nil
		},
	}
}

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check DATE...",
		Short: "Look up several dates concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates := make([]time.Time, len(args))
			for i, arg := range args {
				date, err := dateutil.ParseDate(arg)
				if err != nil {
					return err
				}
				dates[i] = date
			}

			days := make([]*calendar.DayInfo, len(dates))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxConcurrentChecks)

			for i, date := range dates {
				i, date := i, date
				g.Go(func() error {
					day, err := a.cal.GetDayInfo(ctx, date)
					if err != nil {
						return err
					}
					days[i] = day
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			a.logger.Debug("Checked dates", zap.Int("count", len(days)))

			w := cmd.OutOrStdout()
			for _, day := range days {
				printDay(w, *day)
			}
			return nil
		},
	}
}

func printDay(w io.Writer, day calendar.DayInfo) {
	fmt.Fprintf(w, "%s  %s  %-9s  %s  %dh\n",
		statusIcon(day),
		day.Date.Format("2006-01-02 Mon"),
		day.Status,
		day.Type,
		day.WorkingHours)
}

func printDays(w io.Writer, info *calendar.PeriodInfo) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintln(w, "  Date           | Status   | Type      | Hours")
	fmt.Fprintln(w, "-----------------+----------+-----------+------")
	for _, day := range info.Days {
		fmt.Fprintf(w, "  %s | %-8s | %-9s | %5d\n",
			day.Date.Format("2006-01-02 Mon"),
			day.Status,
			day.Type,
			day.WorkingHours)
	}
}

func printSummary(w io.Writer, info *calendar.PeriodInfo) {
	fmt.Fprintln(w, "\n📊 Summary")
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Days:           %d\n", len(info.Days))
	fmt.Fprintf(w, "  Working days:   %d (%d shortened)\n", info.WorkDays, info.ShortDays)
	fmt.Fprintf(w, "  Weekends:       %d\n", info.Weekends)
	fmt.Fprintf(w, "  Holidays:       %d\n", info.Holidays)
	if info.UnknownDays > 0 {
		fmt.Fprintf(w, "  Unknown:        %d\n", info.UnknownDays)
	}
	fmt.Fprintf(w, "  Working hours:  %d\n", info.WorkingHours)
}

func statusIcon(day calendar.DayInfo) string {
	switch day.Type {
	case calendar.DayTypeWorkday:
		return "💼"
	case calendar.DayTypeShortened:
		return "⏳"
	case calendar.DayTypeWeekend, calendar.DayTypeHoliday:
		return "🏖"
	default:
		return "❓"
	}
}
