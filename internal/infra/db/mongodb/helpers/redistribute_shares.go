package helpers

import (
	"math"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RedistributeOutcome separates bills whose shares were rewritten from
// bills that must be deleted because their only participant left.
type RedistributeOutcome struct {
	Updated []models.Bill
	Deleted []primitive.ObjectID
}

// RedistributeShares removes personId from every bill it participates in
// and re-apportions the departing share across the remaining participants
// without changing any bill's total value.
//
// The scheme is greedy: walking the remaining participants in list order,
// each one absorbs round(remainder / participants_left) and the rounded
// slice is subtracted from the remainder before moving on. Rounding drift
// therefore accumulates toward the tail of the list and the redistributed
// amounts always sum back to the departing share. A slice that computes
// negative adds nothing, but is still subtracted so the walk converges.
func RedistributeShares(bills []models.Bill, personId string) *RedistributeOutcome {
	outcome := &RedistributeOutcome{}

	for _, bill := range bills {
		index := -1
		for i, person := range bill.Persons {
			if person.PersonId == personId {
				index = i
				break
			}
		}
		if index == -1 {
			continue
		}

		if len(bill.Persons) == 1 {
			outcome.Deleted = append(outcome.Deleted, bill.Id)
			continue
		}

		remainder := bill.Persons[index].Value
		remaining := make([]models.BillPerson, 0, len(bill.Persons)-1)
		remaining = append(remaining, bill.Persons[:index]...)
		remaining = append(remaining, bill.Persons[index+1:]...)

		for i := range remaining {
			slice := math.Round(remainder / float64(len(remaining)-i))
			remaining[i].Value += math.Max(slice, 0)
			remainder -= slice
		}

		bill.Persons = remaining
		outcome.Updated = append(outcome.Updated, bill)
	}

	return outcome
}
