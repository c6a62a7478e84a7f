package helpers

import (
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
)

const bucketInterval = 24 * time.Hour

// DayBuckets returns the UTC bucket start instants covering (start, end):
// one boundary per 24-hour step, anchored at start.
func DayBuckets(start time.Time, end time.Time) []time.Time {
	var days []time.Time
	for day := start.UTC(); day.Before(end.UTC()); day = day.Add(bucketInterval) {
		days = append(days, day)
	}
	return days
}

// BucketTransactionsByDay groups records into the buckets produced by
// DayBuckets. A record lands in the bucket whose (day, day+24h] window
// contains its creation instant; buckets that catch nothing are dropped.
func BucketTransactionsByDay(records []models.Transaction, start time.Time, end time.Time) []models.DayWiseEntry {
	var entries []models.DayWiseEntry

	for _, day := range DayBuckets(start, end) {
		var data []models.Transaction
		upper := day.Add(bucketInterval)
		for _, record := range records {
			createdAt := record.CreatedAt.UTC()
			if createdAt.After(day) && !createdAt.After(upper) {
				data = append(data, record)
			}
		}
		if len(data) == 0 {
			continue
		}
		entries = append(entries, models.DayWiseEntry{
			Day:  day,
			Data: data,
		})
	}

	return entries
}

// Percentage returns value/total*100, reporting 0 for an empty window
// instead of dividing by zero.
func Percentage(value float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
