package helpers

import (
	"testing"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
)

func transactionAt(createdAt time.Time, value float64) models.Transaction {
	return models.Transaction{
		UserId:    "u1",
		Value:     value,
		CreatedAt: createdAt,
	}
}

func TestDayBuckets(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	days := DayBuckets(start, start.AddDate(0, 0, 3))
	if len(days) != 3 {
		t.Fatalf("expected 3 boundaries, got %d", len(days))
	}
	for i, day := range days {
		want := start.Add(time.Duration(i) * 24 * time.Hour)
		if !day.Equal(want) {
			t.Errorf("boundary %d = %v, want %v", i, day, want)
		}
	}

	if days := DayBuckets(start, start); len(days) != 0 {
		t.Errorf("expected no boundaries for an empty window, got %d", len(days))
	}
}

func TestBucketTransactionsByDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	tests := []struct {
		name     string
		records  []models.Transaction
		validate func(t *testing.T, entries []models.DayWiseEntry)
	}{
		{
			name: "one record per day yields one bucket per day in order",
			records: []models.Transaction{
				transactionAt(start.Add(26*time.Hour), 20),
				transactionAt(start.Add(2*time.Hour), 10),
				transactionAt(start.Add(50*time.Hour), 30),
			},
			validate: func(t *testing.T, entries []models.DayWiseEntry) {
				if len(entries) != 3 {
					t.Fatalf("expected 3 buckets, got %d", len(entries))
				}
				for i, entry := range entries {
					if !entry.Day.Equal(start.Add(time.Duration(i) * 24 * time.Hour)) {
						t.Errorf("bucket %d day = %v, out of order", i, entry.Day)
					}
					if len(entry.Data) != 1 {
						t.Errorf("bucket %d holds %d records, want 1", i, len(entry.Data))
					}
				}
			},
		},
		{
			name: "empty buckets are dropped",
			records: []models.Transaction{
				transactionAt(start.Add(2*time.Hour), 10),
				transactionAt(start.Add(50*time.Hour), 30),
			},
			validate: func(t *testing.T, entries []models.DayWiseEntry) {
				if len(entries) != 2 {
					t.Fatalf("expected 2 buckets, got %d", len(entries))
				}
				if !entries[1].Day.Equal(start.Add(48 * time.Hour)) {
					t.Errorf("second bucket day = %v, want third day", entries[1].Day)
				}
			},
		},
		{
			name: "bucket window is exclusive below and inclusive above",
			records: []models.Transaction{
				// exactly at the lower bound: excluded
				transactionAt(start, 10),
				// exactly on the first boundary: lands in the first bucket
				transactionAt(start.Add(24*time.Hour), 20),
			},
			validate: func(t *testing.T, entries []models.DayWiseEntry) {
				if len(entries) != 1 {
					t.Fatalf("expected 1 bucket, got %d", len(entries))
				}
				if !entries[0].Day.Equal(start) {
					t.Errorf("bucket day = %v, want %v", entries[0].Day, start)
				}
				if len(entries[0].Data) != 1 || entries[0].Data[0].Value != 20 {
					t.Errorf("boundary record bucketed wrong: %+v", entries[0].Data)
				}
			},
		},
		{
			name:    "no records yields no buckets",
			records: nil,
			validate: func(t *testing.T, entries []models.DayWiseEntry) {
				if len(entries) != 0 {
					t.Fatalf("expected no buckets, got %d", len(entries))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BucketTransactionsByDay(tt.records, start, end))
		})
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(30, 60); got != 50 {
		t.Errorf("Percentage(30, 60) = %v, want 50", got)
	}
	if got := Percentage(10, 0); got != 0 {
		t.Errorf("Percentage(10, 0) = %v, want 0 for an empty window", got)
	}
}
