package maze

import "math/bits"

// Cell flag bits. A set direction bit means an open passage on that side;
// absence means a wall. The invalid bit marks cells outside the printable span.
const (
	FlagLeft    uint8 = 0x01
	FlagRight   uint8 = 0x02
	FlagUp      uint8 = 0x04
	FlagDown    uint8 = 0x08
	FlagInvalid uint8 = 0x80

	flagDirs = FlagLeft | FlagRight | FlagUp | FlagDown
)

// Dir identifies one of the four passage directions. Row indices grow upward,
// so Up steps to y+1 and Down to y-1.
type Dir uint8

const (
	Right Dir = iota
	Left
	Down
	Up
)

// Dirs lists the directions in the fixed priority order used by the carving
// and solving traversals.
var Dirs = [4]Dir{Right, Left, Down, Up}

// Bit returns the flag bit set on a cell that has a passage in direction d.
func (d Dir) Bit() uint8 {
	switch d {
	case Right:
		return FlagRight
	case Left:
		return FlagLeft
	case Up:
		return FlagUp
	default:
		return FlagDown
	}
}

// Opposite returns the reciprocal direction.
func (d Dir) Opposite() Dir {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// Step returns the coordinate delta for one move in direction d.
func (d Dir) Step() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Up:
		return 0, 1
	default:
		return 0, -1
	}
}

// Letter returns the single-character name used in solution overlays.
func (d Dir) Letter() byte {
	switch d {
	case Right:
		return 'R'
	case Left:
		return 'L'
	case Up:
		return 'U'
	default:
		return 'D'
	}
}

// Degree counts the open passages in a flag byte, ignoring the invalid bit.
func Degree(v uint8) int {
	return bits.OnesCount8(v & flagDirs)
}
