package micropro

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"iso", "2024-04-01", NewDate(2024, time.April, 1), false},
		{"permissive single digits", "2024-4-1", NewDate(2024, time.April, 1), false},
		{"legacy full timestamp", "2024-04-01T09:30:00Z", NewDate(2024, time.April, 1), false},
		{"garbage", "hier", Date{}, true},
		{"empty", "", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDate_Add_Normalizes(t *testing.T) {
	// Due dates roll over month and year boundaries.
	testCases := []struct {
		name string
		from string
		days int
		want string
	}{
		{"inside month", "2024-04-01", 15, "2024-04-16"},
		{"month rollover", "2024-04-20", 15, "2024-05-05"},
		{"year rollover", "2024-12-28", 7, "2025-01-04"},
		{"leap february", "2024-02-25", 7, "2024-03-03"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.from).Add(tc.days)
			if got.String() != tc.want {
				t.Errorf("%s.Add(%d) = %s, want %s", tc.from, tc.days, got, tc.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.April, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"2024-04-01"` {
		t.Errorf("Marshal() = %s, want the ISO day form", data)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParse("2024-01-01")
	b := MustParse("2024-03-01")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is wrong for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is wrong for %v and %v", a, b)
	}
	if a.After(a) || a.Before(a) {
		t.Errorf("a day compares against itself")
	}
}
