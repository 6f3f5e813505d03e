package services

import (
	"fmt"
	"math"
	"time"

	"github.com/amolwaghmare05/trackify/internal/models"
)

const minWeeklyProgressCeiling = 5

type WeeklyProgressPoint struct {
	Day       string `json:"day"`
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

type DailyConsistencyPoint struct {
	Date        string `json:"date"`
	Consistency int    `json:"consistency"`
	IsToday     bool   `json:"isToday"`
}

type WeeklyConsistencyPoint struct {
	Week        string `json:"week"`
	Consistency int    `json:"consistency"`
}

type HistoryCharts struct {
	WeeklyProgress        []WeeklyProgressPoint    `json:"weeklyProgress"`
	WeeklyProgressCeiling int                      `json:"weeklyProgressCeiling"`
	DailyConsistency      []DailyConsistencyPoint  `json:"dailyConsistency"`
	WeeklyConsistency     []WeeklyConsistencyPoint `json:"weeklyConsistency"`
}

// BuildHistoryCharts turns one kind's daily snapshots into the weekly
// progress bars and the month's daily/weekly consistency series. It is a
// pure function of its inputs: the clock only enters through referenceDate,
// and days without a snapshot count as 0/0 rather than being skipped.
func BuildHistoryCharts(snapshots []models.HistorySnapshot, referenceDate time.Time, location *time.Location) HistoryCharts {
	if location == nil {
		location = time.UTC
	}

	byDay := make(map[string]models.HistorySnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byDay[DateAtLocation(snapshot.Date, location).Format("2006-01-02")] = snapshot
	}

	weekStart := StartOfISOWeek(referenceDate, location)
	weeklyProgress := make([]WeeklyProgressPoint, 0, 7)
	maxCompleted := 0
	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		key := day.Format("2006-01-02")
		completed := byDay[key].Completed
		if completed > maxCompleted {
			maxCompleted = completed
		}
		weeklyProgress = append(weeklyProgress, WeeklyProgressPoint{
			Day:       day.Format("Mon"),
			Date:      key,
			Completed: completed,
		})
	}

	ceiling := int(math.Ceil(float64(maxCompleted) * 1.2))
	if ceiling < minWeeklyProgressCeiling {
		ceiling = minWeeklyProgressCeiling
	}

	monthStart, monthEnd := MonthRange(referenceDate, location)
	daily := make([]DailyConsistencyPoint, 0, monthEnd.Day())
	for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		snapshot := byDay[day.Format("2006-01-02")]
		daily = append(daily, DailyConsistencyPoint{
			Date:        day.Format("Jan 2"),
			Consistency: consistencyPercent(snapshot.Completed, snapshot.Total),
			IsToday:     SameDay(day, referenceDate, location),
		})
	}

	// Week buckets align to Mondays; a bucket that straddles a month
	// boundary only counts the days inside the target month.
	weekly := make([]WeeklyConsistencyPoint, 0, 6)
	weekNumber := 0
	for bucketStart := StartOfISOWeek(monthStart, location); !bucketStart.After(monthEnd); bucketStart = bucketStart.AddDate(0, 0, 7) {
		weekNumber++
		sumCompleted := 0
		sumTotal := 0
		for offset := 0; offset < 7; offset++ {
			day := bucketStart.AddDate(0, 0, offset)
			if day.Before(monthStart) || day.After(monthEnd) {
				continue
			}
			snapshot := byDay[day.Format("2006-01-02")]
			sumCompleted += snapshot.Completed
			sumTotal += snapshot.Total
		}
		weekly = append(weekly, WeeklyConsistencyPoint{
			Week:        fmt.Sprintf("Week %d", weekNumber),
			Consistency: consistencyPercent(sumCompleted, sumTotal),
		})
	}

	return HistoryCharts{
		WeeklyProgress:        weeklyProgress,
		WeeklyProgressCeiling: ceiling,
		DailyConsistency:      daily,
		WeeklyConsistency:     weekly,
	}
}

func consistencyPercent(completed int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
