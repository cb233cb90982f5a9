// Package engine implements the slide-and-merge transformation and the
// terminal-state checks. Everything here is pure: no function mutates its
// input board, spawns tiles or touches randomness.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for direction values or tokens outside the four moves.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every valid direction in a stable order.
var Directions = [...]Direction{Left, Right, Up, Down}

// Valid reports whether d is one of the four moves.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a textual token into a Direction.
// Accepts full names, WASD and vim keys, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "a", "h":
		return Left, nil
	case "right", "d", "l":
		return Right, nil
	case "up", "w", "k":
		return Up, nil
	case "down", "j", "s":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// ParseDirections parses a comma or whitespace separated list of tokens.
func ParseDirections(s string) ([]Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	dirs := make([]Direction, 0, len(fields))
	for _, f := range fields {
		d, err := ParseDirection(f)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
