package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// String formats the matrix as nested rows, e.g. [[1, 2], [3, 4]].
func (m Matrix[C]) String() string {
	n := m.Order()
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j := 0; j < n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(float64(m.cells[i*n+j]), 'g', -1, 32))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}
