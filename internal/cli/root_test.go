package cli

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{"mon", time.Monday, false},
		{"Monday", time.Monday, false},
		{" SAT ", time.Saturday, false},
		{"0", time.Sunday, false},
		{"6", time.Saturday, false},
		{"7", 0, true},
		{"someday", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseWeekday(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseWeekday(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseWeekday(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWeekday(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseStartInstant(t *testing.T) {
	if _, err := parseStartInstant("now"); err != nil {
		t.Errorf("parseStartInstant(now): unexpected error: %v", err)
	}

	got, err := parseStartInstant("2026-01-05")
	if err != nil {
		t.Fatalf("parseStartInstant(date): unexpected error: %v", err)
	}
	want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("parseStartInstant(date) = %v, want %v", got, want)
	}

	got, err = parseStartInstant("2026-01-05T08:30:00Z")
	if err != nil {
		t.Fatalf("parseStartInstant(rfc3339): unexpected error: %v", err)
	}
	if got.UTC().Hour() != 8 || got.UTC().Minute() != 30 {
		t.Errorf("parseStartInstant(rfc3339) = %v, want 08:30 UTC", got)
	}

	if _, err := parseStartInstant("yesterday"); err == nil {
		t.Error("parseStartInstant(yesterday): expected error")
	}
}

func TestParseCodes(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"A", []string{"A"}},
		{"A,B", []string{"A", "B"}},
		{" A , ,B ", []string{"A", "B"}},
	}

	for _, tt := range tests {
		got := parseCodes(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseCodes(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseCodes(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
