package universe

import "fmt"

//Cell is the state of one grid position
//the numeric values are stable: hosts reading Bytes or Cells rely on Dead=0, Alive=1
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//default dimensions of the seeded universe
const (
	DefWidth  uint32 = 23
	DefHeight uint32 = 23
)

func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

//Universe is a toroidal Game of Life grid
//cells are stored row-major in one flat buffer, len(cells) == width*height
//Universe has no internal locking, the caller serializes Tick and reads
type Universe struct {
	width  uint32
	height uint32
	cells  []Cell
}

//New creates the 23x23 universe seeded with the galaxy and the spaceship
func New() *Universe {
	u := NewEmpty(DefWidth, DefHeight)
	u.Settle(GalaxyTemplate())
	u.Settle(SpaceshipTemplate())
	return u
}

//NewEmpty creates the universe with all cells dead
func NewEmpty(width uint32, height uint32) *Universe {
	if width == 0 || height == 0 {
		panic(fmt.Sprintf("universe: invalid dimension %vx%v", width, height))
	}
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, int(width)*int(height)),
	}
}

func (u *Universe) Width() uint32 {
	return u.width
}

func (u *Universe) Height() uint32 {
	return u.height
}

//Cells returns the current generation
//the slice is borrowed: it must not be modified and it is stale after the next Tick
func (u *Universe) Cells() []Cell {
	return u.cells
}

//Rows returns the current generation split into rows
//the rows share the buffer returned by Cells, the same validity rule applies
func (u *Universe) Rows() [][]Cell {
	w := int(u.width)
	rows := make([][]Cell, u.height)
	for i := range rows {
		start := w * i
		rows[i] = u.cells[start : start+w : start+w]
	}
	return rows
}

//Bytes copies the current generation using the interop encoding
func (u *Universe) Bytes() []byte {
	b := make([]byte, len(u.cells))
	for i, c := range u.cells {
		b[i] = byte(c)
	}
	return b
}

//Index returns the buffer offset of the cell at row, column
//row must be < height and column < width, nothing is checked
func (u *Universe) Index(row uint32, column uint32) int {
	return int(row*u.width + column)
}

//Get returns the cell at row, column
func (u *Universe) Get(row uint32, column uint32) Cell {
	return u.cells[u.Index(row, column)]
}

//Set places the cell at row, column, coordinates outside the grid are skipped
func (u *Universe) Set(row uint32, column uint32, c Cell) {
	if row >= u.height || column >= u.width {
		return
	}
	u.cells[u.Index(row, column)] = c
}

//Settle makes every cell of the template alive
func (u *Universe) Settle(tmpl Template) {
	for _, rc := range tmpl.Coordinates {
		u.Set(rc[0], rc[1], Alive)
	}
}

//LiveCells calculates the count of live cells
func (u *Universe) LiveCells() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}

//LiveNeighborCount counts live cells among the 8 neighbours of row, column
//the grid wraps at every edge: adding height-1 (width-1) modulo height (width) is a step back
func (u *Universe) LiveNeighborCount(row uint32, column uint32) uint8 {
	var count uint8
	for _, dr := range [3]uint32{u.height - 1, 0, 1} {
		for _, dc := range [3]uint32{u.width - 1, 0, 1} {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr) % u.height
			nc := (column + dc) % u.width
			count += uint8(u.cells[u.Index(nr, nc)])
		}
	}
	return count
}

//Tick advances the universe by one generation
//the next state is written to a new buffer so that every neighbour count sees the previous generation only,
//then the new buffer replaces the old one
func (u *Universe) Tick() {
	next := make([]Cell, len(u.cells))
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.Index(row, col)
			next[idx] = nextState(u.cells[idx], u.LiveNeighborCount(row, col))
		}
	}
	u.cells = next
}

//nextState applies the Conway rules to one cell
func nextState(c Cell, liveNeighbours uint8) Cell {
	switch {
	case c == Alive && liveNeighbours < 2:
		//underpopulation
		return Dead
	case c == Alive && (liveNeighbours == 2 || liveNeighbours == 3):
		return Alive
	case c == Alive && liveNeighbours > 3:
		//overpopulation
		return Dead
	case c == Dead && liveNeighbours == 3:
		//reproduction
		return Alive
	}
	return c
}
