package models

import "time"

// RollRecord is one completed turn, as written to the append-only roll log
type RollRecord struct {
	// TurnID uniquely identifies the turn for log correlation
	TurnID string

	// Arena the turn was taken in
	Arena string

	// DiceCount at the time of the roll
	DiceCount int

	// Dice holds the individual face values
	Dice []int

	// PlayerName is the roller's display name
	PlayerName string

	// RolledAt is when the turn resolved
	RolledAt time.Time
}
