package maiden

import (
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/maiden/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMultiplyBadge(t *testing.T) {
	assert.Equal(t, "", multiplyBadge("💩", 0))
	assert.Equal(t, "💩", multiplyBadge("💩", 1))
	assert.Equal(t, "💩💩💩", multiplyBadge("💩", 3))
	assert.Equal(t, strings.Repeat("💩", 19), multiplyBadge("💩", 19))

	// Long streaks switch to a count
	assert.Equal(t, "💩 x20", multiplyBadge("💩", 20))
	assert.Equal(t, "💩 x100", multiplyBadge("💩", 100))

	// 69 always gets the annotation, never 69 repetitions
	assert.Equal(t, "💩 x69 (nice)", multiplyBadge("💩", 69))
}

func TestDecorateOrderIsFixed(t *testing.T) {
	badges := &BadgeContext{
		Champ:    "Ann",
		Brick:    "Ann",
		Hundo:    &models.StreakHolder{Name: "Ann", Length: 2},
		Pooper:   &models.StreakHolder{Name: "Ann", Length: 1},
		Doubler:  &models.StreakHolder{Name: "Ann", Length: 3, Token: "🍒"},
		Seasonal: "🏄",
	}

	// crown, hundo, pooper, doubler, brick
	assert.Equal(t, "Ann👑🏄🏄💩🍒🍒🍒🧱", Decorate("Ann", badges))
}

func TestDecorateIsDeterministic(t *testing.T) {
	badges := &BadgeContext{
		Champ:    "Ann",
		Hundo:    &models.StreakHolder{Name: "Bob", Length: 4},
		Pooper:   &models.StreakHolder{Name: models.Nobody},
		Doubler:  &models.StreakHolder{Name: models.Nobody, Token: "✌️"},
		Seasonal: "⛺",
	}

	first := Decorate("Bob", badges)
	second := Decorate("Bob", badges)
	assert.Equal(t, first, second)
	assert.Equal(t, "Bob⛺⛺⛺⛺", first)
}

func TestDecorateNonHolderIsBare(t *testing.T) {
	badges := &BadgeContext{
		Champ:    "Ann",
		Brick:    "Bob",
		Hundo:    &models.StreakHolder{Name: "Ann", Length: 2},
		Pooper:   &models.StreakHolder{Name: "Bob", Length: 1},
		Doubler:  &models.StreakHolder{Name: models.Nobody, Token: "✌️"},
		Seasonal: "🏄",
	}

	assert.Equal(t, "Cid", Decorate("Cid", badges))
}

func TestSeasonalToken(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 5, "🐣"},
		{time.January, 10, "🐤"},
		{time.January, 25, "🐓"},
		{time.January, 31, "🍗"},
		{time.February, 14, "🍲"},
		{time.February, 15, "⛷️"},
		{time.March, 23, "☕"},
		{time.March, 24, "⛺"},
		{time.April, 10, "🌸"},
		{time.April, 17, "🐇"},
		{time.April, 18, "🍫"},
		{time.April, 25, "🌱"},
		{time.April, 30, "🪴"},
		{time.May, 5, "🌳"},
		{time.May, 12, "🐛"},
		{time.May, 20, "🦋"},
		{time.May, 30, "🦆"},
		{time.June, 3, "🌊"},
		{time.June, 10, "🏄"},
		{time.June, 20, "🏝️"},
		{time.June, 28, "🪸"},
		{time.July, 1, "🍁"},
		{time.July, 5, "🐚"},
		{time.July, 12, "🦐"},
		{time.July, 20, "🦩"},
		{time.July, 30, "🌻"},
		{time.August, 15, "🦗"},
		{time.September, 1, "⛺"},
		{time.December, 25, "⛺"},
		{time.December, 26, "🥚"},
	}

	for _, tc := range cases {
		when := time.Date(2025, tc.month, tc.day, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, seasonalToken(when), "month %s day %d", tc.month, tc.day)
	}
}

func TestTrendMarker(t *testing.T) {
	assert.Equal(t, "☀️", trendMarker(models.TrendNewDay))
	assert.Equal(t, "📈", trendMarker(models.TrendHigher))
	assert.Equal(t, "📉", trendMarker(models.TrendLower))
	assert.Equal(t, "", trendMarker(models.TrendNone))
}
