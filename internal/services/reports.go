package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

type ActivityBreakdownEntry struct {
	Activity string `json:"activity"`
	XP       int    `json:"xp"`
	Label    string `json:"label"`
}

type MonthlySummary struct {
	Month      string `json:"month"`
	Percentage int    `json:"percentage"`
}

// BuildActivityBreakdown totals lifetime XP per activity from snapshot
// history and the archive count. Activities with no XP are dropped.
func BuildActivityBreakdown(taskSnapshots []models.HistorySnapshot, workoutSnapshots []models.HistorySnapshot, completedGoalCount int) []ActivityBreakdownEntry {
	taskXP := sumCompleted(taskSnapshots) * XPPerGoalTask
	workoutXP := sumCompleted(workoutSnapshots) * XPPerWorkout
	goalXP := completedGoalCount * XPPerGoalArchive

	entries := []ActivityBreakdownEntry{
		{Activity: "Daily Tasks", XP: taskXP},
		{Activity: "Workouts", XP: workoutXP},
		{Activity: "Goals Completed", XP: goalXP},
	}

	breakdown := make([]ActivityBreakdownEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.XP <= 0 {
			continue
		}
		entry.Label = fmt.Sprintf("%d XP", entry.XP)
		breakdown = append(breakdown, entry)
	}
	return breakdown
}

// BuildMonthlySummaries folds daily snapshots into per-month consistency
// percentages, ordered chronologically.
func BuildMonthlySummaries(snapshots []models.HistorySnapshot, location *time.Location) []MonthlySummary {
	if location == nil {
		location = time.UTC
	}

	type monthTotals struct {
		start     time.Time
		completed int
		total     int
	}

	totalsByMonth := make(map[string]*monthTotals)
	for _, snapshot := range snapshots {
		day := DateAtLocation(snapshot.Date, location)
		key := day.Format("Jan 2006")
		totals, exists := totalsByMonth[key]
		if !exists {
			totals = &monthTotals{start: time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())}
			totalsByMonth[key] = totals
		}
		totals.completed += snapshot.Completed
		totals.total += snapshot.Total
	}

	keys := make([]string, 0, len(totalsByMonth))
	for key := range totalsByMonth {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return totalsByMonth[keys[i]].start.Before(totalsByMonth[keys[j]].start)
	})

	summaries := make([]MonthlySummary, 0, len(keys))
	for _, key := range keys {
		totals := totalsByMonth[key]
		summaries = append(summaries, MonthlySummary{
			Month:      key,
			Percentage: consistencyPercent(totals.completed, totals.total),
		})
	}
	return summaries
}

// ConsistencyScore is the completed-to-total ratio across a snapshot set,
// as a whole percentage.
func ConsistencyScore(snapshots []models.HistorySnapshot) int {
	completed := 0
	total := 0
	for _, snapshot := range snapshots {
		completed += snapshot.Completed
		total += snapshot.Total
	}
	return consistencyPercent(completed, total)
}

func sumCompleted(snapshots []models.HistorySnapshot) int {
	sum := 0
	for _, snapshot := range snapshots {
		sum += snapshot.Completed
	}
	return sum
}
