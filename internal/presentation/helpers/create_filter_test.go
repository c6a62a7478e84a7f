package helpers

import (
	"net/url"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestGetReportFilterByQueries(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name       string
		queries    url.Values
		wantErr    bool
		wantKind   string
		wantWindow [2]time.Time
	}{
		{
			name: "rfc3339 window with type",
			queries: url.Values{
				"start_time": {"2024-03-01T00:00:00Z"},
				"end_time":   {"2024-03-04T00:00:00Z"},
				"type":       {"credit"},
			},
			wantKind: "credit",
			wantWindow: [2]time.Time{
				time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "bare dates are accepted",
			queries: url.Values{
				"start_time": {"2024-03-01"},
				"end_time":   {"2024-03-04"},
			},
			wantWindow: [2]time.Time{
				time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "missing end_time rejected",
			queries: url.Values{
				"start_time": {"2024-03-01"},
			},
			wantErr: true,
		},
		{
			name: "inverted window rejected",
			queries: url.Values{
				"start_time": {"2024-03-04"},
				"end_time":   {"2024-03-01"},
			},
			wantErr: true,
		},
		{
			name: "unknown type rejected",
			queries: url.Values{
				"start_time": {"2024-03-01"},
				"end_time":   {"2024-03-04"},
				"type":       {"loan"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, kind, errResponse := GetReportFilterByQueries(&tt.queries, "u1", validate)
			if tt.wantErr {
				if errResponse == nil {
					t.Fatal("expected an error response")
				}
				return
			}
			if errResponse != nil {
				t.Fatalf("unexpected error response: %+v", errResponse)
			}
			if filter.UserId != "u1" {
				t.Errorf("filter user = %s, want u1", filter.UserId)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", kind, tt.wantKind)
			}
			if !filter.StartTime.Equal(tt.wantWindow[0]) || !filter.EndTime.Equal(tt.wantWindow[1]) {
				t.Errorf("window = [%v, %v], want [%v, %v]",
					filter.StartTime, filter.EndTime, tt.wantWindow[0], tt.wantWindow[1])
			}
		})
	}
}
