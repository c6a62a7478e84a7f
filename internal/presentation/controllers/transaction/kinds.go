package transaction

import (
	"github.com/finsplit/finsplit-backend/internal/domain/models"
)

// allKinds fixes the fan-out order for reports that cover every collection.
var allKinds = []models.TransactionKind{
	models.TransactionCredit,
	models.TransactionDebit,
	models.TransactionEstimation,
}

// parseKind resolves a type parameter; the empty string falls back to the
// given default so report routes can omit it.
func parseKind(value string, fallback models.TransactionKind) (models.TransactionKind, bool) {
	if value == "" {
		return fallback, fallback != ""
	}
	kind := models.TransactionKind(value)
	switch kind {
	case models.TransactionCredit, models.TransactionDebit, models.TransactionEstimation:
		return kind, true
	}
	return "", false
}

type MessageResponse struct {
	Message string `json:"message"`
}
