package domain

// FallOffsets holds, per column, how many lines that column's tokens have
// dropped below the board during the end-of-game animation. It never
// affects the grid itself.
type FallOffsets [Columns]int

// MaxFall is where a column stops falling; tokens at HiddenFall or beyond
// are no longer drawn.
const (
	MaxFall    = 20
	HiddenFall = 19
)

// Advance lets columns start falling from the right edge as the board
// slides to x: the further right, the more columns are loose.
func (f *FallOffsets) Advance(x int) {
	for i := (x - 1) / 2; i > 0; i-- {
		if i > Columns {
			continue
		}
		if f[Columns-i] < MaxFall {
			f[Columns-i]++
		}
	}
}
