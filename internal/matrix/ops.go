package matrix

// Add returns the element-wise sum m + o.
func (m Matrix[C]) Add(o Matrix[C]) Matrix[C] {
	var r Matrix[C]
	for i := 0; i < len(r.cells); i++ {
		r.cells[i] = m.cells[i] + o.cells[i]
	}
	return r
}

// Sub returns the element-wise difference m - o.
func (m Matrix[C]) Sub(o Matrix[C]) Matrix[C] {
	var r Matrix[C]
	for i := 0; i < len(r.cells); i++ {
		r.cells[i] = m.cells[i] - o.cells[i]
	}
	return r
}

// Mul returns the matrix product m × o:
//
//	r[row][col] = Σ m[row][k] * o[k][col], k in [0, N)
//
// The loop is the plain O(N³) one; N is small.
func (m Matrix[C]) Mul(o Matrix[C]) Matrix[C] {
	var r Matrix[C]
	n := m.Order()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var sum float32
			for k := 0; k < n; k++ {
				sum += m.cells[row*n+k] * o.cells[k*n+col]
			}
			r.cells[row*n+col] = sum
		}
	}
	return r
}
