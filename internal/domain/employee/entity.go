package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	Position  Position
	JoinDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Position is the fixed role category of an employee. The enumeration is
// closed; the database column carries the same literal strings.
type Position string

const (
	PositionTraining       Position = "training"
	PositionKaryawan       Position = "karyawan"
	PositionEksekutif      Position = "eksekutif"
	PositionDireksi        Position = "direksi"
	PositionStaffAhli      Position = "staff ahli"
	PositionKomisarisUtama Position = "komisaris utama"
)

// Positions lists every valid position, in rate-table order.
var Positions = []Position{
	PositionTraining,
	PositionKaryawan,
	PositionEksekutif,
	PositionDireksi,
	PositionStaffAhli,
	PositionKomisarisUtama,
}

// dailyRates maps each position to its fixed daily pay in rupiah.
// Direksi and komisaris utama are never eligible for daily pay.
var dailyRates = map[Position]int64{
	PositionTraining:       50000,
	PositionKaryawan:       50000,
	PositionEksekutif:      25000,
	PositionDireksi:        0,
	PositionStaffAhli:      25000,
	PositionKomisarisUtama: 0,
}

// SupervisorPositions are the positions allowed to attest a payment recording.
var SupervisorPositions = []Position{
	PositionEksekutif,
	PositionDireksi,
	PositionKomisarisUtama,
}

// IsValid reports whether p is a member of the closed position enumeration.
func (p Position) IsValid() bool {
	_, ok := dailyRates[p]
	return ok
}

// DailyRate returns the fixed daily pay amount for the position.
func (p Position) DailyRate() int64 {
	return dailyRates[p]
}

// PayEligible reports whether the position receives a non-zero daily payment.
func (p Position) PayEligible() bool {
	return p != PositionDireksi && p != PositionKomisarisUtama
}
