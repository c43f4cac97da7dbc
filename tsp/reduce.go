package tsp

import "math"

// costMatrix is a private n×n row-major snapshot owned by one search node.
// +Inf marks an entry that no completion of the node may use.
type costMatrix struct {
	n int
	a []float64
}

// newCostMatrix copies the prefetched weights into a fresh matrix.
func newCostMatrix(ws *weights) costMatrix {
	a := make([]float64, len(ws.w))
	copy(a, ws.w)

	return costMatrix{n: ws.n, a: a}
}

// clone returns an independent copy of m.
func (m costMatrix) clone() costMatrix {
	a := make([]float64, len(m.a))
	copy(a, m.a)

	return costMatrix{n: m.n, a: a}
}

func (m costMatrix) at(i, j int) float64     { return m.a[i*m.n+j] }
func (m costMatrix) set(i, j int, v float64) { m.a[i*m.n+j] = v }

// blockRow forbids every edge leaving i.
func (m costMatrix) blockRow(i int) {
	inf := math.Inf(1)
	row := m.a[i*m.n : (i+1)*m.n]
	for j := range row {
		row[j] = inf
	}
}

// blockCol forbids every edge entering j.
func (m costMatrix) blockCol(j int) {
	inf := math.Inf(1)
	for i := 0; i < m.n; i++ {
		m.a[i*m.n+j] = inf
	}
}

// reduce is the bounding step. It forbids self-loops, then subtracts from
// every row its finite minimum and afterwards from every column its finite
// minimum, accumulating the subtracted amounts. Fully forbidden rows and
// columns contribute nothing. The returned cost is a lower bound on the
// weight of any assignment still allowed by m.
//
// Complexity: O(n²).
func (m costMatrix) reduce() float64 {
	var (
		n    = m.n
		inf  = math.Inf(1)
		cost float64
		i, j int
		lo   float64
	)
	for i = 0; i < n; i++ {
		m.a[i*n+i] = inf
	}

	// Rows.
	for i = 0; i < n; i++ {
		row := m.a[i*n : (i+1)*n]
		lo = inf
		for j = 0; j < n; j++ {
			if row[j] < lo {
				lo = row[j]
			}
		}
		if math.IsInf(lo, 1) || lo == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			row[j] -= lo // +Inf stays +Inf
		}
		cost += lo
	}

	// Columns.
	for j = 0; j < n; j++ {
		lo = inf
		for i = 0; i < n; i++ {
			if v := m.a[i*n+j]; v < lo {
				lo = v
			}
		}
		if math.IsInf(lo, 1) || lo == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			m.a[i*n+j] -= lo
		}
		cost += lo
	}

	return cost
}
