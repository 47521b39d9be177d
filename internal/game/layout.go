package game

import "github.com/vovakirdan/dxball/internal/core"

// Brick grid layout.
const (
	BrickRows    = 7
	BrickCols    = 12
	BrickMarginX = 70.0
	BrickMarginY = 100.0
	BrickGap     = 6.0
	BrickHeight  = 22.0
)

// brickColors cycle by row, top row first.
var brickColors = []core.Color{
	{R: 0.9, G: 0.2, B: 0.4},
	{R: 0.9, G: 0.6, B: 0.1},
	{R: 0.9, G: 0.9, B: 0.2},
	{R: 0.2, G: 0.8, B: 0.4},
	{R: 0.2, G: 0.6, B: 0.9},
	{R: 0.5, G: 0.3, B: 0.9},
	{R: 0.8, G: 0.8, B: 0.8},
}

// BuildBricks lays out a rows×cols grid hanging from the top of a
// width×height playfield. The top two rows take two hits; each row down is
// worth ten more points.
func BuildBricks(width, height float64, rows, cols int) []Brick {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	areaW := width - 2*BrickMarginX
	bw := (areaW - float64(cols-1)*BrickGap) / float64(cols)
	bricks := make([]Brick, 0, rows*cols)

	for r := 0; r < rows; r++ {
		hp := 1
		if r < 2 {
			hp = 2
		}
		for c := 0; c < cols; c++ {
			bricks = append(bricks, Brick{
				Pos: core.V(
					BrickMarginX+float64(c)*(bw+BrickGap)+bw/2,
					height-BrickMarginY-float64(r)*(BrickHeight+BrickGap)-BrickHeight/2,
				),
				W:     bw,
				H:     BrickHeight,
				Alive: true,
				HP:    hp,
				Color: brickColors[r%len(brickColors)],
				Score: 50 + 10*r,
			})
		}
	}
	return bricks
}

// countAlive returns the number of bricks still standing.
func countAlive(bricks []Brick) int {
	n := 0
	for i := range bricks {
		if bricks[i].Alive {
			n++
		}
	}
	return n
}
