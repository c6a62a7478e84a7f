package transaction

import (
	"testing"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback models.TransactionKind
		want     models.TransactionKind
		wantOk   bool
	}{
		{
			name:   "credit",
			value:  "credit",
			want:   models.TransactionCredit,
			wantOk: true,
		},
		{
			name:   "debit",
			value:  "debit",
			want:   models.TransactionDebit,
			wantOk: true,
		},
		{
			name:   "estimation",
			value:  "estimation",
			want:   models.TransactionEstimation,
			wantOk: true,
		},
		{
			name:     "empty falls back",
			value:    "",
			fallback: models.TransactionDebit,
			want:     models.TransactionDebit,
			wantOk:   true,
		},
		{
			name:   "empty without fallback",
			value:  "",
			wantOk: false,
		},
		{
			name:   "unknown kind",
			value:  "savings",
			wantOk: false,
		},
		{
			name:     "unknown kind ignores fallback",
			value:    "savings",
			fallback: models.TransactionDebit,
			wantOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseKind(tt.value, tt.fallback)
			if ok != tt.wantOk {
				t.Fatalf("parseKind(%q) ok = %v, want %v", tt.value, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("parseKind(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
