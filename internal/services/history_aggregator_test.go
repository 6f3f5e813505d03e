package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

func makeSnapshot(date string, completed int, total int) models.HistorySnapshot {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		panic(err)
	}
	return models.HistorySnapshot{
		Kind:      models.KindGoalTask,
		Date:      day,
		Completed: completed,
		Total:     total,
	}
}

func TestBuildHistoryChartsWeeklyProgress(t *testing.T) {
	// 2026-08-20 is a Thursday; its ISO week runs Mon 17th to Sun 23rd.
	reference := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	snapshots := []models.HistorySnapshot{
		makeSnapshot("2026-08-17", 2, 3),
		makeSnapshot("2026-08-19", 4, 4),
		makeSnapshot("2026-08-10", 9, 9), // previous week, must not appear
	}

	charts := BuildHistoryCharts(snapshots, reference, time.UTC)

	if len(charts.WeeklyProgress) != 7 {
		t.Fatalf("expected 7 weekly points, got %d", len(charts.WeeklyProgress))
	}
	if charts.WeeklyProgress[0].Day != "Mon" || charts.WeeklyProgress[0].Date != "2026-08-17" {
		t.Fatalf("expected week to start Monday the 17th, got %+v", charts.WeeklyProgress[0])
	}
	if charts.WeeklyProgress[0].Completed != 2 {
		t.Fatalf("expected Monday completed 2, got %d", charts.WeeklyProgress[0].Completed)
	}
	if charts.WeeklyProgress[2].Completed != 4 {
		t.Fatalf("expected Wednesday completed 4, got %d", charts.WeeklyProgress[2].Completed)
	}
	if charts.WeeklyProgress[1].Completed != 0 {
		t.Fatalf("expected missing day to read 0, got %d", charts.WeeklyProgress[1].Completed)
	}
}

func TestBuildHistoryChartsCeiling(t *testing.T) {
	reference := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		completed int
		want      int
	}{
		{name: "floor of five", completed: 3, want: 5},
		{name: "twenty percent headroom", completed: 10, want: 12},
		{name: "rounds up", completed: 9, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charts := BuildHistoryCharts([]models.HistorySnapshot{
				makeSnapshot("2026-08-18", tt.completed, tt.completed),
			}, reference, time.UTC)
			if charts.WeeklyProgressCeiling != tt.want {
				t.Fatalf("expected ceiling %d for max %d, got %d", tt.want, tt.completed, charts.WeeklyProgressCeiling)
			}
		})
	}
}

func TestBuildHistoryChartsDailyConsistency(t *testing.T) {
	reference := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	charts := BuildHistoryCharts([]models.HistorySnapshot{
		makeSnapshot("2026-08-01", 1, 2),
		makeSnapshot("2026-08-20", 3, 3),
	}, reference, time.UTC)

	if len(charts.DailyConsistency) != 31 {
		t.Fatalf("expected 31 daily points for August, got %d", len(charts.DailyConsistency))
	}
	if charts.DailyConsistency[0].Date != "Aug 1" || charts.DailyConsistency[0].Consistency != 50 {
		t.Fatalf("unexpected first day %+v", charts.DailyConsistency[0])
	}
	if !charts.DailyConsistency[19].IsToday {
		t.Fatal("expected the 20th to be flagged as today")
	}
	if charts.DailyConsistency[19].Consistency != 100 {
		t.Fatalf("expected 100%% on the 20th, got %d", charts.DailyConsistency[19].Consistency)
	}
	if charts.DailyConsistency[5].Consistency != 0 {
		t.Fatalf("expected missing day to read 0, got %d", charts.DailyConsistency[5].Consistency)
	}
}

func TestBuildHistoryChartsDeterministic(t *testing.T) {
	reference := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	snapshots := []models.HistorySnapshot{
		makeSnapshot("2026-07-29", 5, 5),
		makeSnapshot("2026-08-01", 1, 2),
		makeSnapshot("2026-08-17", 2, 3),
		makeSnapshot("2026-08-19", 4, 4),
		makeSnapshot("2026-08-20", 3, 3),
	}

	first := BuildHistoryCharts(snapshots, reference, time.UTC)
	second := BuildHistoryCharts(snapshots, reference, time.UTC)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical input:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestBuildHistoryChartsWeeklyConsistencyClipsToMonth(t *testing.T) {
	// August 2026 starts on a Saturday, so the first week bucket also spans
	// late July. Only the August days may count.
	reference := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	charts := BuildHistoryCharts([]models.HistorySnapshot{
		makeSnapshot("2026-07-29", 5, 5), // same bucket, previous month
		makeSnapshot("2026-08-01", 1, 2),
		makeSnapshot("2026-08-02", 1, 2),
	}, reference, time.UTC)

	if len(charts.WeeklyConsistency) != 6 {
		t.Fatalf("expected 6 week buckets, got %d", len(charts.WeeklyConsistency))
	}
	if charts.WeeklyConsistency[0].Week != "Week 1" {
		t.Fatalf("unexpected first bucket label %q", charts.WeeklyConsistency[0].Week)
	}
	if charts.WeeklyConsistency[0].Consistency != 50 {
		t.Fatalf("expected July days excluded from week 1, got %d", charts.WeeklyConsistency[0].Consistency)
	}
	if charts.WeeklyConsistency[5].Consistency != 0 {
		t.Fatalf("expected empty final bucket, got %d", charts.WeeklyConsistency[5].Consistency)
	}
}
