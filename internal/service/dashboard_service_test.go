package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerready_backend/internal/model"
	"careerready_backend/internal/util"
)

func logsFor(dates ...string) []model.DailyLog {
	logs := make([]model.DailyLog, len(dates))
	for i, d := range dates {
		logs[i] = model.DailyLog{Date: d, Hours: 1.5}
	}
	return logs
}

func TestStreakLength(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		logs []model.DailyLog
		want int
	}{
		{"empty", nil, 0},
		{"today only", logsFor("2026-08-29"), 1},
		{"three days ending today", logsFor("2026-08-27", "2026-08-28", "2026-08-29"), 3},
		{"ends yesterday, streak survives", logsFor("2026-08-27", "2026-08-28"), 2},
		{"gap breaks it", logsFor("2026-08-26", "2026-08-28", "2026-08-29"), 2},
		{"old run does not count", logsFor("2026-08-01", "2026-08-02"), 0},
	}

	for _, tc := range cases {
		if got := streakLength(tc.logs, today); got != tc.want {
			t.Errorf("%s: expected streak %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestLogHoursRejectsMalformedDate(t *testing.T) {
	// Date validation runs before any repository use, so a nil-repo service is
	// enough to exercise it.
	svc := NewDashboardService(nil, nil, nil)
	for _, date := range []string{"29-08-2026", "2026/08/29", "2026-13-01", "today"} {
		_, err := svc.LogHours(context.Background(), "u1", date, 2)
		if !errors.Is(err, util.ErrInvalidDate) {
			t.Errorf("date %q: expected ErrInvalidDate, got %v", date, err)
		}
	}
}

func TestStreakIgnoresZeroHourDays(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	logs := []model.DailyLog{
		{Date: "2026-08-28", Hours: 2},
		{Date: "2026-08-29", Hours: 0},
	}
	// Today has an entry with zero hours, so the streak falls back to the run
	// ending yesterday.
	if got := streakLength(logs, today); got != 1 {
		t.Errorf("expected streak 1, got %d", got)
	}
}
