package sdf

import "testing"

func TestEDT1D(t *testing.T) {
	// A single zero sample in the middle; everything else far away.
	grid := []float64{inf, inf, 0, inf, inf}
	n := len(grid)
	f := make([]float64, n)
	z := make([]float64, n+1)
	v := make([]int, n)

	edt1d(grid, 0, 1, n, f, z, v)

	want := []float64{4, 1, 0, 1, 4}
	for i := range want {
		if grid[i] != want[i] {
			t.Errorf("grid[%d] = %v, want %v", i, grid[i], want[i])
		}
	}
}

func TestEDT2D(t *testing.T) {
	const n = 5
	grid := make([]float64, n*n)
	for i := range grid {
		grid[i] = inf
	}
	grid[2*n+2] = 0 // single seed at the center

	f := make([]float64, n)
	z := make([]float64, n+1)
	v := make([]int, n)
	edt(grid, n, n, f, z, v)

	// Every cell ends up with its squared Euclidean distance to the
	// center.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx, dy := float64(x-2), float64(y-2)
			want := dx*dx + dy*dy
			if got := grid[y*n+x]; got != want {
				t.Errorf("grid[%d,%d] = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEDT2DTwoSeeds(t *testing.T) {
	const n = 4
	grid := make([]float64, n*n)
	for i := range grid {
		grid[i] = inf
	}
	grid[0] = 0     // seed at (0,0)
	grid[3*n+3] = 0 // seed at (3,3)

	f := make([]float64, n)
	z := make([]float64, n+1)
	v := make([]int, n)
	edt(grid, n, n, f, z, v)

	// Each cell takes the distance to whichever seed is nearer.
	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0},
		{3, 3, 0},
		{1, 0, 1},
		{2, 3, 1},
		{1, 1, 2},
		{2, 2, 2},
		{3, 0, 9}, // equidistant corners
	}
	for _, tt := range tests {
		if got := grid[tt.y*n+tt.x]; got != tt.want {
			t.Errorf("grid[%d,%d] = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
