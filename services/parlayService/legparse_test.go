package parlayService

import "testing"

func TestParseLegs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single leg",
			input: "(go gym)",
			want:  []string{"go gym"},
		},
		{
			name:  "multiple legs with filler between",
			input: "(go gym) (study 40 mins) (finish 310 hw)",
			want:  []string{"go gym", "study 40 mins", "finish 310 hw"},
		},
		{
			name:  "whitespace trimmed inside groups",
			input: "(  go gym  )( study )",
			want:  []string{"go gym", "study"},
		},
		{
			name:  "empty groups dropped",
			input: "() (go gym) (   )",
			want:  []string{"go gym"},
		},
		{
			name:  "text outside groups ignored",
			input: "please (go gym) thanks",
			want:  []string{"go gym"},
		},
		{
			name:    "nested parentheses",
			input:   "((go gym))",
			wantErr: true,
		},
		{
			name:    "stray close",
			input:   "go gym)",
			wantErr: true,
		},
		{
			name:    "missing close",
			input:   "(go gym",
			wantErr: true,
		},
		{
			name:  "no groups at all",
			input: "go gym",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLegs(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqual(t, len(tt.want), len(got), "leg count")
			for i := range tt.want {
				if i < len(got) {
					assertEqual(t, tt.want[i], got[i], "leg text")
				}
			}
		})
	}
}
