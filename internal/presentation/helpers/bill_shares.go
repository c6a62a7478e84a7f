package helpers

import (
	"math"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
)

const shareSumTolerance = 1e-6

// SharesMatchBillValue reports whether the per-person shares sum back to
// the bill's total. Writes that break this invariant are rejected instead
// of silently persisted.
func SharesMatchBillValue(value float64, persons []models.BillPerson) bool {
	var sum float64
	for _, person := range persons {
		sum += person.Value
	}
	return math.Abs(sum-value) <= shareSumTolerance
}
