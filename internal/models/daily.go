package models

// Trend describes how a roll moved the daily record
type Trend string

const (
	// TrendNone indicates the roll set no daily record
	TrendNone Trend = ""

	// TrendNewDay indicates the first recorded roll of the day
	TrendNewDay Trend = "new day"

	// TrendHigher indicates a new daily high score
	TrendHigher Trend = "higher"

	// TrendLower indicates a new daily low score
	TrendLower Trend = "lower"
)

// DailyRecord holds one calendar day's high and low rolls for an arena.
// Zero scores and empty names mean nothing has been recorded yet.
type DailyRecord struct {
	HighScore int
	HighName  string
	LowScore  int
	LowName   string
}

// AllTimeRecord holds the best roll ever seen in an arena
type AllTimeRecord struct {
	Score int
	Name  string
}
