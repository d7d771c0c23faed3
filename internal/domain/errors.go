package domain

import "errors"

// Catalog errors
var (
	ErrChampionNotFound = errors.New("champion not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrRuneNotFound     = errors.New("rune not found")
	ErrUnknownItemTag   = errors.New("unknown item tag")
	ErrInvalidCatalog   = errors.New("invalid catalog")
)

// Request validation errors
var (
	ErrRosterFull        = errors.New("roster cannot have more than 5 champions")
	ErrDuplicateChampion = errors.New("champion appears more than once")
	ErrEmptyRoster       = errors.New("both rosters need at least one champion")
	ErrMissingChampion   = errors.New("own champion is required")
	ErrInvalidStanding   = errors.New("invalid standing")
	ErrNegativeGold      = errors.New("gold must be non-negative")
	ErrNegativeTime      = errors.New("elapsed time must be non-negative")
	ErrInvalidCategory   = errors.New("invalid item category")
)

// MaxRosterSize is the number of champions a team fields
const MaxRosterSize = 5
