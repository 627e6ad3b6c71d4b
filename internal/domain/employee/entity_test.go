package employee

import (
	"testing"
)

func TestPositionDailyRate(t *testing.T) {
	cases := []struct {
		position Position
		want     int64
	}{
		{PositionTraining, 50000},
		{PositionKaryawan, 50000},
		{PositionEksekutif, 25000},
		{PositionStaffAhli, 25000},
		{PositionDireksi, 0},
		{PositionKomisarisUtama, 0},
	}
	for _, c := range cases {
		got := c.position.DailyRate()
		if got != c.want {
			t.Errorf("DailyRate(%q) = %d, want %d", c.position, got, c.want)
		}
	}
}

func TestPositionIsValid(t *testing.T) {
	for _, p := range Positions {
		if !p.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", p)
		}
	}

	invalid := []Position{"", "manager", "Training", "KARYAWAN"}
	for _, p := range invalid {
		if p.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", p)
		}
	}
}

func TestPositionPayEligible(t *testing.T) {
	eligible := []Position{PositionTraining, PositionKaryawan, PositionEksekutif, PositionStaffAhli}
	for _, p := range eligible {
		if !p.PayEligible() {
			t.Errorf("PayEligible(%q) = false, want true", p)
		}
	}

	ineligible := []Position{PositionDireksi, PositionKomisarisUtama}
	for _, p := range ineligible {
		if p.PayEligible() {
			t.Errorf("PayEligible(%q) = true, want false", p)
		}
		if p.DailyRate() != 0 {
			t.Errorf("DailyRate(%q) = %d, want 0 for pay-ineligible position", p, p.DailyRate())
		}
	}
}

func TestSupervisorPositions(t *testing.T) {
	want := map[Position]bool{
		PositionEksekutif:      true,
		PositionDireksi:        true,
		PositionKomisarisUtama: true,
	}
	if len(SupervisorPositions) != len(want) {
		t.Fatalf("SupervisorPositions has %d entries, want %d", len(SupervisorPositions), len(want))
	}
	for _, p := range SupervisorPositions {
		if !want[p] {
			t.Errorf("unexpected supervisor position %q", p)
		}
	}
}
