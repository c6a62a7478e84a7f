package helpers

import (
	"testing"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
)

func TestSharesMatchBillValue(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		persons []models.BillPerson
		want    bool
	}{
		{
			name:  "exact split",
			value: 100,
			persons: []models.BillPerson{
				{PersonId: "a", Value: 40},
				{PersonId: "b", Value: 60},
			},
			want: true,
		},
		{
			name:  "shares short of the total",
			value: 100,
			persons: []models.BillPerson{
				{PersonId: "a", Value: 40},
				{PersonId: "b", Value: 50},
			},
			want: false,
		},
		{
			name:    "no shares against a zero bill",
			value:   0,
			persons: nil,
			want:    true,
		},
		{
			name:  "fractional shares within tolerance",
			value: 0.3,
			persons: []models.BillPerson{
				{PersonId: "a", Value: 0.1},
				{PersonId: "b", Value: 0.2},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SharesMatchBillValue(tt.value, tt.persons); got != tt.want {
				t.Errorf("SharesMatchBillValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
