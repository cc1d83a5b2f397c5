package ledger

import (
	"testing"
	"time"
)

func TestFilterMonth(t *testing.T) {
	txns := []Transaction{
		{ID: 1, Date: NewDate(2024, time.March, 1)},
		{ID: 2, Date: NewDate(2024, time.March, 31)},
		{ID: 3, Date: NewDate(2024, time.April, 1)},
		{ID: 4, Date: NewDate(2023, time.March, 15)},
	}

	got := FilterMonth(txns, Month{2024, time.March})
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("wrong transactions selected: %v, %v", got[0].ID, got[1].ID)
	}

	if got := FilterMonth(txns, Month{2025, time.March}); got != nil {
		t.Errorf("expected empty result for month with no transactions, got %d", len(got))
	}
}

func TestMonth_AddMonths(t *testing.T) {
	tests := []struct {
		name string
		m    Month
		n    int
		want Month
	}{
		{"forward within year", Month{2024, time.March}, 2, Month{2024, time.May}},
		{"backward across year", Month{2024, time.January}, -1, Month{2023, time.December}},
		{"forward across year", Month{2024, time.November}, 3, Month{2025, time.February}},
		{"zero", Month{2024, time.June}, 0, Month{2024, time.June}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.AddMonths(tt.n); got != tt.want {
				t.Errorf("AddMonths(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestMonth_MonthsSince(t *testing.T) {
	start := Month{2023, time.November}
	end := Month{2024, time.February}
	if got := end.MonthsSince(start); got != 4 {
		t.Errorf("MonthsSince = %d, want 4", got)
	}
	if got := start.MonthsSince(start); got != 1 {
		t.Errorf("MonthsSince(self) = %d, want 1", got)
	}
}

func TestMonth_Label(t *testing.T) {
	tests := []struct {
		m    Month
		want string
	}{
		{Month{2024, time.January}, "Gen 24"},
		{Month{2024, time.May}, "Mag 24"},
		{Month{2026, time.December}, "Dic 26"},
		{Month{2009, time.August}, "Ago 09"},
	}
	for _, tt := range tests {
		if got := tt.m.Label(); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.July, 9)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-07-09"` {
		t.Errorf("marshal = %s, want %q", data, `"2024-07-09"`)
	}

	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip changed the date: %v != %v", back, d)
	}

	if err := back.UnmarshalJSON([]byte(`"09/07/2024"`)); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
