package matrix

// Cells lists the row-major backing arrays a Matrix may use. The array
// length is N², which fixes the order N at compile time.
type Cells interface {
	~[0]float32 | ~[1]float32 | ~[4]float32 | ~[9]float32 | ~[16]float32 |
		~[25]float32 | ~[36]float32 | ~[49]float32 | ~[64]float32
}

// Backing arrays for the common orders.
type (
	Size2 = [4]float32
	Size3 = [9]float32
	Size4 = [16]float32
)

// Matrix is an N×N grid of float32 values stored row-major in C.
// The zero value is the zero matrix.
type Matrix[C Cells] struct {
	cells C
}

type (
	Mat2 = Matrix[Size2]
	Mat3 = Matrix[Size3]
	Mat4 = Matrix[Size4]
)

// Zero returns the matrix with every element 0.
func Zero[C Cells]() Matrix[C] {
	return Matrix[C]{}
}

// Identity returns the matrix with 1 on the main diagonal and 0 elsewhere.
func Identity[C Cells]() Matrix[C] {
	var m Matrix[C]
	n := m.Order()
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = 1
	}
	return m
}

// New wraps a row-major array literal. The values are kept as given.
func New[C Cells](cells C) Matrix[C] {
	return Matrix[C]{cells: cells}
}

// FromRows builds a matrix from row slices. It fails with ErrShape unless
// rows is exactly N rows of N values.
func FromRows[C Cells](rows [][]float32) (Matrix[C], error) {
	var m Matrix[C]
	n := m.Order()
	if len(rows) != n {
		return m, shapeErrorf("got %d rows, want %d", len(rows), n)
	}
	for i, row := range rows {
		if len(row) != n {
			return m, shapeErrorf("row %d has %d values, want %d", i, len(row), n)
		}
		for j, v := range row {
			m.cells[i*n+j] = v
		}
	}
	return m, nil
}

// Order returns N.
func (m Matrix[C]) Order() int {
	return order(len(m.cells))
}

// At returns the element at (row, col). It panics with *IndexError when
// either index is outside [0, N).
func (m Matrix[C]) At(row, col int) float32 {
	return m.cells[m.offset(row, col)]
}

// Set stores v at (row, col). Same bounds contract as At.
func (m *Matrix[C]) Set(row, col int, v float32) {
	m.cells[m.offset(row, col)] = v
}

// Equal reports whether every pair of corresponding elements compares
// equal. It is the same as a == b.
func (m Matrix[C]) Equal(o Matrix[C]) bool {
	return m.cells == o.cells
}

// Rows returns a fresh copy of the elements as row slices.
func (m Matrix[C]) Rows() [][]float32 {
	n := m.Order()
	rows := make([][]float32, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float32, n)
		for j := 0; j < n; j++ {
			rows[i][j] = m.cells[i*n+j]
		}
	}
	return rows
}

// Cells returns the row-major backing array by value.
func (m Matrix[C]) Cells() C {
	return m.cells
}

func (m Matrix[C]) offset(row, col int) int {
	n := m.Order()
	// a flat bounds check alone would accept (0, n)
	if row < 0 || row >= n || col < 0 || col >= n {
		panic(&IndexError{Row: row, Col: col, Order: n})
	}
	return row*n + col
}

// order is the integer square root of a Cells length.
func order(cells int) int {
	n := 0
	for n*n < cells {
		n++
	}
	return n
}
