package middlewares

import "testing"

func TestSubjectClaim(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   string
		wantOk bool
	}{
		{
			name:   "string subject",
			claims: map[string]interface{}{"sub": "66a1f0c2e4b0a1b2c3d4e5f6"},
			want:   "66a1f0c2e4b0a1b2c3d4e5f6",
			wantOk: true,
		},
		{
			name:   "missing subject",
			claims: map[string]interface{}{"exp": float64(1900000000)},
			wantOk: false,
		},
		{
			name:   "non-string subject",
			claims: map[string]interface{}{"sub": 42},
			wantOk: false,
		},
		{
			name:   "empty subject",
			claims: map[string]interface{}{"sub": ""},
			wantOk: false,
		},
		{
			name:   "nil claims",
			claims: nil,
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := subjectClaim(tt.claims)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if got != tt.want {
				t.Errorf("subject = %q, want %q", got, tt.want)
			}
		})
	}
}
