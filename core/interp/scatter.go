// core/interp/scatter.go
package interp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const knotEps = 1e-12

// nearest returns point indices sorted by normalized distance to q, ties
// broken by index so evaluation is deterministic.
func (it *Interpolant) nearest(q []float64) ([]int, []float64) {
	n := len(it.points)
	dist := make([]float64, n)
	for i, p := range it.points {
		s := 0.0
		for d := range p {
			dx := (p[d] - q[d]) * it.scale[d]
			s += dx * dx
		}
		dist[i] = math.Sqrt(s)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if dist[order[a]] != dist[order[b]] {
			return dist[order[a]] < dist[order[b]]
		}
		return order[a] < order[b]
	})
	return order, dist
}

// simplexWeights computes barycentric-style weights over the nearest
// neighbors: solve for w with sum(w)=1 reproducing q in normalized
// coordinates, via least squares / minimum norm. Exact at knots. Falls back
// to inverse-distance weights when the neighborhood is degenerate.
func (it *Interpolant) simplexWeights(q []float64) []weighted {
	order, dist := it.nearest(q)
	if dist[order[0]] <= knotEps {
		return []weighted{{idx: order[0], w: 1}}
	}

	k := it.opt.Neighbors
	if k > len(order) {
		k = len(order)
	}
	if k == 1 {
		return []weighted{{idx: order[0], w: 1}}
	}
	nb := order[:k]

	rows := it.dims + 1
	a := mat.NewDense(rows, k, nil)
	b := mat.NewVecDense(rows, nil)
	for d := 0; d < it.dims; d++ {
		for j, pi := range nb {
			a.Set(d, j, it.points[pi][d]*it.scale[d])
		}
		b.SetVec(d, q[d]*it.scale[d])
	}
	for j := range nb {
		a.Set(it.dims, j, 1)
	}
	b.SetVec(it.dims, 1)

	var w mat.VecDense
	if err := w.SolveVec(a, b); err != nil {
		return it.idwWeightsFrom(nb, dist)
	}
	out := make([]weighted, 0, k)
	for j, pi := range nb {
		if wj := w.AtVec(j); wj != 0 {
			out = append(out, weighted{idx: pi, w: wj})
		}
	}
	if len(out) == 0 {
		return it.idwWeightsFrom(nb, dist)
	}
	return out
}

// idwWeights is the inverse-distance method over the configured neighbor
// count, exposed as a selectable strategy in its own right.
func (it *Interpolant) idwWeights(q []float64) []weighted {
	order, dist := it.nearest(q)
	if dist[order[0]] <= knotEps {
		return []weighted{{idx: order[0], w: 1}}
	}
	k := it.opt.Neighbors
	if k > len(order) {
		k = len(order)
	}
	return it.idwWeightsFrom(order[:k], dist)
}

func (it *Interpolant) idwWeightsFrom(nb []int, dist []float64) []weighted {
	out := make([]weighted, len(nb))
	total := 0.0
	for j, pi := range nb {
		w := 1 / math.Pow(dist[pi]+knotEps, it.opt.Power)
		out[j] = weighted{idx: pi, w: w}
		total += w
	}
	for j := range out {
		out[j].w /= total
	}
	return out
}
