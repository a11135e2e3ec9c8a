package universe

import (
	"testing"
)

//coordinates of the seed, written out the same way the demo seed was drawn
func seedCoordinates() map[[2]uint32]bool {
	m := map[[2]uint32]bool{}
	for x := uint32(0); x < 6; x++ {
		m[[2]uint32{4, 7 + x}] = true
		m[[2]uint32{5, 7 + x}] = true
		m[[2]uint32{4 + x, 14}] = true
		m[[2]uint32{4 + x, 15}] = true
		m[[2]uint32{11, 15 - x}] = true
		m[[2]uint32{12, 15 - x}] = true
		m[[2]uint32{12 - x, 7}] = true
		m[[2]uint32{12 - x, 8}] = true
	}
	for _, rc := range [][2]uint32{{17, 3}, {17, 6}, {18, 2}, {19, 2}, {19, 6}, {20, 2}, {20, 3}, {20, 4}, {20, 5}} {
		m[rc] = true
	}
	return m
}

func liveSet(u *Universe) map[[2]uint32]bool {
	m := map[[2]uint32]bool{}
	for r := uint32(0); r < u.Height(); r++ {
		for c := uint32(0); c < u.Width(); c++ {
			if u.Get(r, c) == Alive {
				m[[2]uint32{r, c}] = true
			}
		}
	}
	return m
}

func settle(u *Universe, cells ...[2]uint32) {
	u.Settle(Template{Name: "test", Coordinates: cells})
}

func assertLive(t *testing.T, u *Universe, want map[[2]uint32]bool) {
	t.Helper()
	got := liveSet(u)
	if len(got) != len(want) {
		t.Errorf("live cells: got %v, want %v", len(got), len(want))
	}
	for rc := range want {
		if !got[rc] {
			t.Errorf("cell %v: got Dead, want Alive", rc)
		}
	}
	for rc := range got {
		if !want[rc] {
			t.Errorf("cell %v: got Alive, want Dead", rc)
		}
	}
}

func TestNew_Seed(t *testing.T) {
	u := New()
	if u.Width() != 23 || u.Height() != 23 {
		t.Fatalf("dimension: got %vx%v, want 23x23", u.Width(), u.Height())
	}
	if got := u.LiveCells(); got != 57 {
		t.Errorf("LiveCells: got %v, want 57", got)
	}
	assertLive(t, u, seedCoordinates())
}

func TestTemplates_Size(t *testing.T) {
	if got := len(GalaxyTemplate().Coordinates); got != 48 {
		t.Errorf("galaxy: got %v cells, want 48", got)
	}
	if got := len(SpaceshipTemplate().Coordinates); got != 9 {
		t.Errorf("spaceship: got %v cells, want 9", got)
	}
}

func TestIndex(t *testing.T) {
	u := New()
	for r := uint32(0); r < u.Height(); r++ {
		for c := uint32(0); c < u.Width(); c++ {
			if got, want := u.Index(r, c), int(r*u.Width()+c); got != want {
				t.Fatalf("Index(%v, %v): got %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestLiveNeighborCount_Toroidal(t *testing.T) {
	u := NewEmpty(DefWidth, DefHeight)
	u.Set(0, 0, Alive)

	tests := []struct {
		name   string
		row    uint32
		column uint32
		want   uint8
	}{
		{"opposite corner", u.Height() - 1, u.Width() - 1, 1},
		{"last row", u.Height() - 1, 0, 1},
		{"last column", 0, u.Width() - 1, 1},
		{"inner", 1, 1, 1},
		{"self excluded", 0, 0, 0},
		{"far", 10, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.LiveNeighborCount(tt.row, tt.column); got != tt.want {
				t.Errorf("LiveNeighborCount(%v, %v): got %v, want %v", tt.row, tt.column, got, tt.want)
			}
		})
	}
}

func TestLiveNeighborCount_Full(t *testing.T) {
	u := NewEmpty(5, 5)
	for i := range u.cells {
		u.cells[i] = Alive
	}
	if got := u.LiveNeighborCount(0, 4); got != 8 {
		t.Errorf("got %v, want 8", got)
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		cell       Cell
		neighbours uint8
		want       Cell
	}{
		{Alive, 0, Dead},
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Alive, 8, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
		{Dead, 0, Dead},
	}
	for _, tt := range tests {
		if got := nextState(tt.cell, tt.neighbours); got != tt.want {
			t.Errorf("nextState(%v, %v): got %v, want %v", tt.cell, tt.neighbours, got, tt.want)
		}
	}
}

func TestTick_DeadStaysDead(t *testing.T) {
	u := NewEmpty(8, 6)
	for i := 0; i < 10; i++ {
		u.Tick()
		if got := u.LiveCells(); got != 0 {
			t.Fatalf("tick %v: got %v live cells, want 0", i+1, got)
		}
	}
}

func TestTick_BlockStillLife(t *testing.T) {
	for _, size := range []uint32{4, 6} {
		u := NewEmpty(size, size)
		block := [][2]uint32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
		settle(u, block...)
		u.Tick()

		want := map[[2]uint32]bool{}
		for _, rc := range block {
			want[rc] = true
		}
		assertLive(t, u, want)
	}
}

func TestTick_Blinker(t *testing.T) {
	u := NewEmpty(5, 5)
	settle(u, [2]uint32{2, 1}, [2]uint32{2, 2}, [2]uint32{2, 3})

	u.Tick()
	assertLive(t, u, map[[2]uint32]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})
	u.Tick()
	assertLive(t, u, map[[2]uint32]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestTick_GliderTranslates(t *testing.T) {
	glider := [][2]uint32{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	u := NewEmpty(10, 10)
	for _, rc := range glider {
		u.Set(rc[0]+2, rc[1]+2, Alive)
	}
	for i := 0; i < 4; i++ {
		u.Tick()
	}
	want := map[[2]uint32]bool{}
	for _, rc := range glider {
		want[[2]uint32{rc[0] + 3, rc[1] + 3}] = true
	}
	assertLive(t, u, want)
}

func TestTick_GliderWrapsAround(t *testing.T) {
	glider := [][2]uint32{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	u := NewEmpty(8, 8)
	settle(u, glider...)
	//a full lap of the torus returns the glider to its origin
	for i := 0; i < 4*8; i++ {
		u.Tick()
	}
	want := map[[2]uint32]bool{}
	for _, rc := range glider {
		want[rc] = true
	}
	assertLive(t, u, want)
}

func TestTick_Invariants(t *testing.T) {
	u := New()
	for i := 0; i < 50; i++ {
		u.Tick()
		if u.Width() != DefWidth || u.Height() != DefHeight {
			t.Fatalf("tick %v: dimension changed to %vx%v", i+1, u.Width(), u.Height())
		}
		if got, want := len(u.Cells()), int(u.Width()*u.Height()); got != want {
			t.Fatalf("tick %v: buffer length %v, want %v", i+1, got, want)
		}
	}
}

func TestTick_ReplacesBuffer(t *testing.T) {
	u := New()
	before := u.Cells()
	snapshot := u.Bytes()
	u.Tick()
	for i := range before {
		if byte(before[i]) != snapshot[i] {
			t.Fatalf("previous generation was modified at %v", i)
		}
	}
}

func TestSet_OutOfRange(t *testing.T) {
	u := NewEmpty(3, 3)
	u.Set(3, 0, Alive)
	u.Set(0, 3, Alive)
	if got := u.LiveCells(); got != 0 {
		t.Errorf("got %v live cells, want 0", got)
	}
}

func TestRowsAndBytes(t *testing.T) {
	u := New()
	rows := u.Rows()
	if len(rows) != int(u.Height()) {
		t.Fatalf("rows: got %v, want %v", len(rows), u.Height())
	}
	if rows[17][3] != Alive || rows[17][4] != Dead {
		t.Errorf("row 17 does not match the buffer")
	}
	b := u.Bytes()
	for i, c := range u.Cells() {
		if b[i] != byte(c) || b[i] > 1 {
			t.Fatalf("byte %v: got %v, cell %v", i, b[i], c)
		}
	}
}

func TestNewEmpty_ZeroDimension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	NewEmpty(0, 3)
}

func Benchmark_Tick(b *testing.B) {
	u := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Tick()
	}
}

func Benchmark_LiveNeighborCount(b *testing.B) {
	u := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.LiveNeighborCount(uint32(i)%u.Height(), 0)
	}
}
