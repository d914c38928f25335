// core/interp/grid.go
package interp

import "sort"

// gridIndex is the tensor-product fast path: when the point cloud is a full
// factorial grid, each query touches at most 2^dims corners instead of a
// scattered-neighbor solve. Detection is an optimization only; correctness
// never depends on it.
type gridIndex struct {
	axes    [][]float64 // sorted unique values per axis
	strides []int       // row index = sum(axisIdx[d] * strides[d]) via lookup
	lookup  map[int]int // cell key -> point index
}

func detectGrid(points [][]float64) (*gridIndex, bool) {
	dims := len(points[0])
	g := &gridIndex{axes: make([][]float64, dims)}
	for d := 0; d < dims; d++ {
		seen := map[float64]struct{}{}
		for _, p := range points {
			seen[p[d]] = struct{}{}
		}
		ax := make([]float64, 0, len(seen))
		for x := range seen {
			ax = append(ax, x)
		}
		sort.Float64s(ax)
		g.axes[d] = ax
	}

	total := 1
	g.strides = make([]int, dims)
	for d := dims - 1; d >= 0; d-- {
		g.strides[d] = total
		total *= len(g.axes[d])
	}
	if total != len(points) {
		return nil, false
	}

	g.lookup = make(map[int]int, len(points))
	for i, p := range points {
		key := 0
		for d, x := range p {
			key += g.strides[d] * sort.SearchFloat64s(g.axes[d], x)
		}
		if _, dup := g.lookup[key]; dup {
			return nil, false
		}
		g.lookup[key] = i
	}
	return g, true
}

// cellWeights returns the multilinear corner weights for q. Out-of-range
// coordinates use the edge cell, which extrapolates linearly when the
// policy left them unclamped.
func (g *gridIndex) cellWeights(q []float64) []weighted {
	dims := len(g.axes)
	idx := make([]int, dims) // lower corner per axis
	frac := make([]float64, dims)
	for d, ax := range g.axes {
		if len(ax) == 1 {
			idx[d], frac[d] = 0, 0
			continue
		}
		i := sort.SearchFloat64s(ax, q[d]) - 1
		if i < 0 {
			i = 0
		}
		if i > len(ax)-2 {
			i = len(ax) - 2
		}
		idx[d] = i
		frac[d] = (q[d] - ax[i]) / (ax[i+1] - ax[i])
	}

	var out []weighted
	corners := 1 << dims
	for c := 0; c < corners; c++ {
		w := 1.0
		key := 0
		skip := false
		for d := 0; d < dims; d++ {
			hi := c&(1<<d) != 0
			if len(g.axes[d]) == 1 {
				if hi {
					skip = true
					break
				}
				key += g.strides[d] * idx[d]
				continue
			}
			if hi {
				w *= frac[d]
				key += g.strides[d] * (idx[d] + 1)
			} else {
				w *= 1 - frac[d]
				key += g.strides[d] * idx[d]
			}
		}
		if skip || w == 0 {
			continue
		}
		out = append(out, weighted{idx: g.lookup[key], w: w})
	}
	return out
}
