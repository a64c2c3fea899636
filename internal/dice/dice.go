package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/maiden/internal/dice Roller

// Roller provides the randomness the game depends on
type Roller interface {
	// RollDie returns a uniform value in [1, sides]
	RollDie(sides int) int

	// ChooseOne returns a uniformly chosen element of options
	ChooseOne(options []string) string
}

// Config for the dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRoller implements Roller using math/rand
type DefaultRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultRoller{
		random: rand.New(source),
	}
}

// RollDie generates a random roll with the specified number of sides
func (r *DefaultRoller) RollDie(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// ChooseOne picks a random element from options
func (r *DefaultRoller) ChooseOne(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.random.Intn(len(options))]
}
