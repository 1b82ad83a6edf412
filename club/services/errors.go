package services

import "errors"

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrDuplicateJersey is returned when a create or update would give two
	// players the same jersey number.
	ErrDuplicateJersey = errors.New("jersey number already taken")

	// ErrValidation is returned when a supplied field value is malformed,
	// such as an empty value for a required text field. Binding tags cannot
	// catch these on partial updates: the validator treats a pointer to ""
	// as omitted.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidReference is returned when a supplied reference list contains
	// at least one id that does not resolve. It deliberately does not say
	// which one.
	ErrInvalidReference = errors.New("one or more referenced records do not exist")
)
