package types

import (
	"testing"
	"time"
)

func TestMonth_String(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2026, time.January, "2026-01"},
		{2026, time.December, "2026-12"},
		{999, time.March, "0999-03"},
	}

	for _, tt := range tests {
		got := NewMonth(tt.year, tt.month).String()
		if got != tt.want {
			t.Errorf("NewMonth(%d, %d).String() = %q, want %q", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonth_AddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start Month
		n     int
		want  Month
	}{
		{"forward within year", NewMonth(2026, time.June), 3, NewMonth(2026, time.September)},
		{"backward within year", NewMonth(2026, time.June), -5, NewMonth(2026, time.January)},
		{"backward across year boundary", NewMonth(2026, time.January), -1, NewMonth(2025, time.December)},
		{"backward across several years", NewMonth(2026, time.February), -14, NewMonth(2024, time.December)},
		{"forward across year boundary", NewMonth(2025, time.November), 2, NewMonth(2026, time.January)},
		{"zero", NewMonth(2026, time.June), 0, NewMonth(2026, time.June)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.AddMonths(tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestMonth_Contains(t *testing.T) {
	m := NewMonth(2026, time.January)

	if !m.Contains(NewDate(2026, time.January, 1)) {
		t.Error("Expected month to contain its first day")
	}
	if !m.Contains(NewDate(2026, time.January, 31)) {
		t.Error("Expected month to contain its last day")
	}
	if m.Contains(NewDate(2026, time.February, 1)) {
		t.Error("Expected month not to contain the next month's first day")
	}
	if m.Contains(NewDate(2025, time.January, 15)) {
		t.Error("Expected month not to contain the same month of another year")
	}
}

func TestMonth_JSONRoundTrip(t *testing.T) {
	m := NewMonth(2026, time.March)

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != `"2026-03"` {
		t.Errorf("MarshalJSON = %s, want %q", data, `"2026-03"`)
	}

	var decoded Month
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !decoded.Equal(m) {
		t.Errorf("Round trip produced %s, want %s", decoded, m)
	}
}
