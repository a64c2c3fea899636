package models

// Nobody is the sentinel holder name used when a record has never been claimed
const Nobody = "<nobody>"

// StreakKind identifies one of the tracked streak records
type StreakKind string

const (
	// StreakHundo tracks the last player to roll a 100
	StreakHundo StreakKind = "hundo"

	// StreakPooper tracks the last player to roll a 1
	StreakPooper StreakKind = "pooper"

	// StreakDoubler tracks the last player to roll matching dice on a two-die turn
	StreakDoubler StreakKind = "doubler"
)

// StreakHolder represents the current holder of a streak record
type StreakHolder struct {
	// Name is the holder's display name, or Nobody when unclaimed
	Name string

	// Length is the number of consecutive qualifying events by this holder
	Length int

	// Token is the emoji assigned to the current doubler streak.
	// Empty for the hundo and pooper streaks.
	Token string
}
