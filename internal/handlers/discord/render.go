package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/maiden/internal/models"
	"github.com/KirkDiggler/maiden/internal/services/maiden"
)

// renderRollOutcome turns a resolved turn into the announcement message
func renderRollOutcome(output *maiden.RollOutput) string {
	faces := renderDice(output.Dice)

	if output.Kind == maiden.RollKindMax {
		return fmt.Sprintf("%s MAX ROLL: `%s` Result: %d", output.DecoratedName, faces, output.Sum)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Roll: `%s` Result: %d", output.DecoratedName, faces, output.Sum)
	for _, extra := range []string{output.FlavorText, output.TrendMarker, output.SpeedMarker} {
		if extra != "" {
			sb.WriteString(" ")
			sb.WriteString(extra)
		}
	}

	return sb.String()
}

// renderDice joins face values without spaces, e.g. "42,17,100"
func renderDice(dice []int) string {
	parts := make([]string, len(dice))
	for i, face := range dice {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, ",")
}

// renderHighScore turns the record board into the reply message
func renderHighScore(output *maiden.GetHighScoreOutput) string {
	yesterdayName := models.Nobody
	yesterdayScore := 0
	if output.Yesterday != nil {
		if output.Yesterday.HighName != "" {
			yesterdayName = output.Yesterday.HighName
		}
		yesterdayScore = output.Yesterday.HighScore
	}

	todayName := "<nobody yet>"
	todayScore := 0
	if output.Today != nil {
		if output.Today.HighName != "" {
			todayName = output.Today.HighName
		}
		todayScore = output.Today.HighScore
	}

	allTimeName := models.Nobody
	allTimeScore := 0
	if output.AllTime != nil {
		if output.AllTime.Name != "" {
			allTimeName = output.AllTime.Name
		}
		allTimeScore = output.AllTime.Score
	}

	// adorn marks yesterday's champ with a crown and the reigning pooper
	adorn := func(name string) string {
		if name == "" || name == models.Nobody || name == "<nobody yet>" {
			return name
		}

		badges := []string{name}
		if name == yesterdayName {
			badges = append(badges, "👑")
		}
		if name == output.CurrentPooper {
			badges = append(badges, "💩")
		}
		return strings.Join(badges, "")
	}

	countDescs := make([]string, 0, len(output.Leaderboard)+1)
	for _, entry := range output.Leaderboard {
		countDescs = append(countDescs, fmt.Sprintf("%s (%d)", adorn(entry.PlayerName), entry.RollCount))
	}
	if output.TotalRolls > 0 {
		countDescs = append(countDescs, fmt.Sprintf("Total: %d", output.TotalRolls))
	}

	return fmt.Sprintf("Today: %d by %s\nYesterday: %d by %s👑\nAll time: %d by %s\nRolls: %s",
		todayScore, adorn(todayName),
		yesterdayScore, yesterdayName,
		allTimeScore, adorn(allTimeName),
		strings.Join(countDescs, ", "))
}
