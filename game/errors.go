package game

import "errors"

var (
	ErrGameAlreadyWon       = errors.New("game already won")
	ErrGameOver             = errors.New("game over")
	ErrDrawNotPending       = errors.New("no draw pending")
	ErrDrawPending          = errors.New("draw pending")
	ErrInvalidCardCount     = errors.New("invalid card count")
	ErrCardNotAvailable     = errors.New("card not available")
	ErrCardNotInHand        = errors.New("card not in hand")
	ErrCardNotRecoverable   = errors.New("card not recoverable")
	ErrCardNotFound         = errors.New("card not found")
	ErrNoDiscardsRemaining  = errors.New("no discards remaining")
	ErrDrawExceedsAvailable = errors.New("draw exceeds available cards")
	ErrDrawExceedsShortfall = errors.New("draw exceeds hand shortfall")
	ErrDuplicateCard        = errors.New("duplicate card")
	ErrInvalidConfig        = errors.New("invalid config")
)
