package apperror

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrCellOccupied  = errors.New("cell already occupied")
	ErrEndOfInput    = errors.New("end of input")
	ErrInvalidMark   = errors.New("invalid player mark")
	ErrDuplicateMark = errors.New("player marks must be distinct")
)
