package sdf

// inf is the sentinel for "no sample here"; any real squared distance on
// the working surface is far below it.
const inf = 1e20

// edt computes the 2-D squared Euclidean distance transform of grid in
// place over a width×height region, first along columns and then along
// rows (Felzenszwalb & Huttenlocher, "Distance Transforms of Sampled
// Functions").
func edt(grid []float64, width, height int, f, z []float64, v []int) {
	for x := 0; x < width; x++ {
		edt1d(grid, x, width, height, f, z, v)
	}
	for y := 0; y < height; y++ {
		edt1d(grid, y*width, 1, width, f, z, v)
	}
}

// edt1d transforms one row or column: it builds the lower envelope of
// the parabolas rooted at each sample and then evaluates it at every
// position. v holds the parabola roots, z the boundaries between
// envelope sections, f the sampled values.
func edt1d(grid []float64, offset, stride, length int, f, z []float64, v []int) {
	v[0] = 0
	z[0] = -inf
	z[1] = inf
	f[0] = grid[offset]

	k := 0
	for q := 1; q < length; q++ {
		f[q] = grid[offset+q*stride]
		q2 := float64(q * q)
		var s float64
		for {
			r := v[k]
			s = (f[q] - f[r] + q2 - float64(r*r)) / float64(2*(q-r))
			if s > z[k] {
				break
			}
			k--
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = inf
	}

	k = 0
	for q := 0; q < length; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		r := v[k]
		dq := float64(q - r)
		grid[offset+q*stride] = f[r] + dq*dq
	}
}
