package maiden

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrConsecutiveTurn is the only expected rejection: the same player may
	// not take two turns in a row. No state has changed when it is returned.
	ErrConsecutiveTurn GameError = "the dice are hot"

	ErrNilInput         GameError = "input cannot be nil"
	ErrInvalidInput     GameError = "arena and player id cannot be empty"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilGameRepo      GameError = "game repository cannot be nil"
	ErrNilNamesRepo     GameError = "names repository cannot be nil"
	ErrNilRollLogRepo   GameError = "roll log repository cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
