package maiden

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/maiden/internal/models"
)

// BadgeContext carries the record holders a name is decorated against
type BadgeContext struct {
	// Champ is yesterday's high roller
	Champ string

	// Brick is yesterday's low roller
	Brick string

	Hundo   *models.StreakHolder
	Pooper  *models.StreakHolder
	Doubler *models.StreakHolder

	// Seasonal is the symbol repeated for the hundo streak
	Seasonal string
}

// Decorate appends record-holder badges to a display name. Badge order is
// fixed: crown, hundo, pooper, doubler, brick.
func Decorate(name string, badges *BadgeContext) string {
	parts := []string{name}

	if badges.Champ != "" && name == badges.Champ {
		parts = append(parts, "👑")
	}
	if badges.Hundo != nil && name == badges.Hundo.Name {
		parts = append(parts, multiplyBadge(badges.Seasonal, badges.Hundo.Length))
	}
	if badges.Pooper != nil && name == badges.Pooper.Name {
		parts = append(parts, multiplyBadge("💩", badges.Pooper.Length))
	}
	if badges.Doubler != nil && name == badges.Doubler.Name {
		parts = append(parts, multiplyBadge(badges.Doubler.Token, badges.Doubler.Length))
	}
	if badges.Brick != "" && name == badges.Brick {
		parts = append(parts, "🧱")
	}

	return strings.Join(parts, "")
}

// multiplyBadge renders a streak symbol. Short streaks repeat the symbol
// literally, long ones get a count, and 69 gets its due.
func multiplyBadge(symbol string, count int) string {
	if count == 69 {
		return symbol + " x69 (nice)"
	}
	if count >= 20 {
		return fmt.Sprintf("%s x%d", symbol, count)
	}
	if count < 0 {
		count = 0
	}
	return strings.Repeat(symbol, count)
}

// seasonalToken picks the hundo-streak symbol for the current date
func seasonalToken(now time.Time) string {
	day := now.Day()
	month := int(now.Month())

	switch {
	case month == 1:
		switch {
		case day <= 7:
			return "🐣"
		case day <= 14:
			return "🐤"
		case day <= 30:
			return "🐓"
		default:
			return "🍗"
		}
	case month == 2:
		if day <= 14 {
			return "🍲"
		}
		return "⛷️"
	case month == 3 && day <= 23:
		return "☕"
	case month <= 4 && day <= 14:
		return "🌸"
	case month == 4:
		// easter window, chocolate on the monday
		switch {
		case day <= 17:
			return "🐇"
		case day == 18:
			return "🍫"
		case day <= 25:
			return "🌱"
		default:
			return "🪴"
		}
	case month == 5:
		switch {
		case day <= 7:
			return "🌳"
		case day <= 14:
			return "🐛"
		case day <= 21:
			return "🦋"
		default:
			return "🦆"
		}
	case month == 6:
		switch {
		case day <= 7:
			return "🌊"
		case day <= 14:
			return "🏄"
		case day <= 21:
			return "🏝️"
		default:
			return "🪸"
		}
	case month == 7:
		switch {
		case day == 1:
			return "🍁"
		case day <= 7:
			return "🐚"
		case day <= 14:
			return "🦐"
		case day <= 21:
			return "🦩"
		default:
			return "🌻"
		}
	case month == 8:
		return "🦗"
	case month == 12 && day > 25:
		return "🥚"
	}
	// the rest of the year camps out
	return "⛺"
}

// trendMarker maps a daily trend to its cosmetic symbol
func trendMarker(trend models.Trend) string {
	switch trend {
	case models.TrendNewDay:
		return "☀️"
	case models.TrendHigher:
		return "📈"
	case models.TrendLower:
		return "📉"
	default:
		return ""
	}
}
