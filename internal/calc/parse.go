package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/matcalc/internal/matrix"
)

// ParseRows reads "1,2;3,4" style text: rows are separated by ';' or
// newlines, values by ',' or whitespace. A closing bracket also ends a row,
// so the output of Matrix.String parses back.
func ParseRows(s string) ([][]float32, error) {
	s = strings.NewReplacer("[", " ", "]", ";", "\n", ";").Replace(s)

	var rows [][]float32
	for _, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]float32, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d value %q", ErrParse, len(rows), f)
			}
			row[j] = float32(v)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrParse)
	}
	return rows, nil
}

// ParseMatrix parses text with ParseRows and checks it is N×N.
func ParseMatrix[C matrix.Cells](s string) (matrix.Matrix[C], error) {
	rows, err := ParseRows(s)
	if err != nil {
		return matrix.Matrix[C]{}, err
	}
	return matrix.FromRows[C](rows)
}
