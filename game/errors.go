package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when a turn or phase method is called out of sequence.
	ErrInvalidState = errors.New("invalid state")
	// ErrIllegalAction is returned when an action's preconditions are not met.
	ErrIllegalAction = errors.New("illegal action")
	// ErrInvalidConfig is returned by NewGame for unsupported player or epidemic counts.
	ErrInvalidConfig = errors.New("invalid game config")
	// ErrGameOver is returned by every mutating call once the game is won or lost.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrInvalidState)
)

func invalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func illegalAction(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalAction, fmt.Sprintf(format, args...))
}

// LossReason records which terminal condition ended the game.
type LossReason int

const (
	NotLost LossReason = iota
	CubesExhausted
	EighthOutbreak
	PlayerDeckExhausted
)

var lossReasonNames = map[LossReason]string{
	NotLost:             "not lost",
	CubesExhausted:      "ran out of disease cubes",
	EighthOutbreak:      "reached eighth outbreak",
	PlayerDeckExhausted: "ran out of player deck cards",
}

func (r LossReason) String() string {
	if s, ok := lossReasonNames[r]; ok {
		return s
	}
	return "unknown"
}
