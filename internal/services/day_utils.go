package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func SameDay(first time.Time, second time.Time, location *time.Location) bool {
	return DateAtLocation(first, location).Equal(DateAtLocation(second, location))
}

// StartOfISOWeek returns midnight of the Monday of the week containing value.
func StartOfISOWeek(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// MonthRange returns midnight of the first and last days of the calendar
// month containing value.
func MonthRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	day := DateAtLocation(value, location)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}
