package models

// LeaderboardEntry is one player's cumulative roll count in an arena
type LeaderboardEntry struct {
	PlayerID   string
	PlayerName string
	RollCount  int
}
