package util

import "testing"

func TestFormatAudioDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 45, "0:45"},
		{"pads seconds", 185, "3:05"},
		{"exact minute", 60, "1:00"},
		{"over an hour", 3725, "1:02:05"},
		{"negative clamps", -10, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAudioDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatAudioDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
