package transcript

import (
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "seconds only", input: "45", want: 45},
		{name: "minutes and seconds", input: "2:30", want: 150},
		{name: "hours minutes seconds", input: "1:02:03", want: 3723},
		{name: "fractional seconds", input: "0:01:30.500", want: 90.5},
		{name: "leading whitespace", input: " 2:30 ", want: 150},
		{name: "empty", input: "", wantErr: true},
		{name: "four components", input: "1:02:03:04", wantErr: true},
		{name: "non numeric", input: "1:xx:03", wantErr: true},
		{name: "negative component", input: "1:-2:03", wantErr: true},
		{name: "fractional minutes", input: "1.5:30", wantErr: true},
		{name: "fractional hours", input: "1.5:02:03", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimestamp(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name       string
		seconds    float64
		forceHours bool
		want       string
	}{
		{name: "zero", seconds: 0, want: "0:00"},
		{name: "under a minute", seconds: 45, want: "0:45"},
		{name: "minutes", seconds: 150, want: "2:30"},
		{name: "hours", seconds: 3723, want: "1:02:03"},
		{name: "forced hours", seconds: 150, forceHours: true, want: "0:02:30"},
		{name: "negative clamps to zero", seconds: -5, want: "0:00"},
		{name: "fraction truncates", seconds: 90.9, want: "1:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds, tt.forceHours); got != tt.want {
				t.Errorf("FormatTimestamp(%v, %v) = %q, want %q", tt.seconds, tt.forceHours, got, tt.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, seconds := range []float64{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399} {
		formatted := FormatTimestamp(seconds, true)
		parsed, err := ParseTimestamp(formatted)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", formatted, err)
		}
		if parsed != seconds {
			t.Errorf("round trip %v -> %q -> %v", seconds, formatted, parsed)
		}
	}
}
