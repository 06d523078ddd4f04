package freshness

import (
	"testing"
	"time"
)

var today = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func daysFromToday(days int) *time.Time {
	t := today.AddDate(0, 0, days)
	return &t
}

func TestEvaluateStatusBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		days   int
		status Status
	}{
		{"expired yesterday", -1, StatusExpired},
		{"expires today", 0, StatusExpiringSoon},
		{"three days left", 3, StatusExpiringSoon},
		{"four days left", 4, StatusUseSoon},
		{"seven days left", 7, StatusUseSoon},
		{"eight days left", 8, StatusFresh},
		{"a month left", 30, StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(nil, daysFromToday(tt.days), today)
			if report.Status != tt.status {
				t.Errorf("Status = %s, want %s", report.Status, tt.status)
			}
			if report.DaysUntilExpiry == nil || *report.DaysUntilExpiry != tt.days {
				t.Errorf("DaysUntilExpiry = %v, want %d", report.DaysUntilExpiry, tt.days)
			}
		})
	}
}

func TestEvaluateMissingExpiry(t *testing.T) {
	report := Evaluate(daysFromToday(-10), nil, today)

	if report.Status != StatusUnknown {
		t.Errorf("Status = %s, want unknown", report.Status)
	}
	if report.DaysUntilExpiry != nil || report.ShelfLifeDays != nil || report.FreshPercentage != nil {
		t.Errorf("expected all derived fields nil, got %+v", report)
	}
}

func TestEvaluatePercentage(t *testing.T) {
	tests := []struct {
		name       string
		production int
		expiry     int
		pct        int
	}{
		{"half shelf life left", -10, 10, 50},
		{"just produced", 0, 20, 100},
		{"expired clamps to zero", -20, -5, 0},
		{"rounds to nearest", -20, 10, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(daysFromToday(tt.production), daysFromToday(tt.expiry), today)
			if report.FreshPercentage == nil {
				t.Fatal("FreshPercentage = nil")
			}
			if *report.FreshPercentage != tt.pct {
				t.Errorf("FreshPercentage = %d, want %d", *report.FreshPercentage, tt.pct)
			}
		})
	}
}

func TestEvaluatePercentageUndefined(t *testing.T) {
	// Expiry on or before production gives no meaningful shelf life.
	report := Evaluate(daysFromToday(5), daysFromToday(5), today)
	if report.FreshPercentage != nil {
		t.Errorf("FreshPercentage = %d, want nil", *report.FreshPercentage)
	}

	// No production date at all.
	report = Evaluate(nil, daysFromToday(5), today)
	if report.FreshPercentage != nil {
		t.Errorf("FreshPercentage = %d, want nil", *report.FreshPercentage)
	}
}

func TestInFreshWindow(t *testing.T) {
	if InFreshWindow(daysFromToday(7), today) {
		t.Error("7 days out should not be in the fresh window")
	}
	if !InFreshWindow(daysFromToday(8), today) {
		t.Error("8 days out should be in the fresh window")
	}
	if InFreshWindow(nil, today) {
		t.Error("missing expiry should not be in the fresh window")
	}
}
