// Package draw renders the game to a terminal using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// cellRune picks the half-block character for a terminal cell.
func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
