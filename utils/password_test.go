package utils

import "testing"

func TestIsPasswordStrong(t *testing.T) {
	strong := []string{
		"Str0ng!Pass",
		"Aa1!aaaa",
		"C0mplex&Password",
	}
	for _, p := range strong {
		if !IsPasswordStrong(p) {
			t.Errorf("expected %q to be accepted", p)
		}
	}

	// Too short, no uppercase, no lowercase, no digit, no special.
	weak := []string{
		"",
		"short1!",
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigitsHere!",
		"NoSpecials123",
	}
	for _, p := range weak {
		if IsPasswordStrong(p) {
			t.Errorf("expected %q to be rejected", p)
		}
	}
}

func TestParseSchedule(t *testing.T) {
	got, err := ParseSchedule("2024-06-01", "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != 6 || got.Day() != 1 || got.Hour() != 14 || got.Minute() != 30 {
		t.Errorf("unexpected timestamp: %v", got)
	}

	bad := [][2]string{
		{"June 1st", "14:30"},
		{"2024-06-01", "2pm"},
		{"2024-13-01", "14:30"},
		{"", ""},
	}
	for _, tc := range bad {
		if _, err := ParseSchedule(tc[0], tc[1]); err == nil {
			t.Errorf("expected %q %q to be rejected", tc[0], tc[1])
		}
	}
}
