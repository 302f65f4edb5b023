package calc

import (
	"fmt"
	"math"

	"github.com/san-kum/matcalc/internal/matrix"
)

// MaxPower bounds the exponent PowerSeries accepts; every step is kept.
const MaxPower = 1 << 16

// Power returns m multiplied by itself k times; m⁰ is the identity.
func Power[C matrix.Cells](m matrix.Matrix[C], k int) (matrix.Matrix[C], error) {
	series, err := PowerSeries(m, k)
	if err != nil {
		return matrix.Matrix[C]{}, err
	}
	return series[k], nil
}

// PowerSeries returns m⁰, m¹, ..., mᵏ.
func PowerSeries[C matrix.Cells](m matrix.Matrix[C], k int) ([]matrix.Matrix[C], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePower, k)
	}
	if k > MaxPower {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrPowerTooLarge, k, MaxPower)
	}
	series := make([]matrix.Matrix[C], k+1)
	series[0] = matrix.Identity[C]()
	for i := 1; i <= k; i++ {
		series[i] = series[i-1].Mul(m)
	}
	return series, nil
}

// Trace returns the sum of the diagonal.
func Trace[C matrix.Cells](m matrix.Matrix[C]) float64 {
	sum := 0.0
	for i := 0; i < m.Order(); i++ {
		sum += float64(m.At(i, i))
	}
	return sum
}

// Frobenius returns the square root of the sum of squared elements.
func Frobenius[C matrix.Cells](m matrix.Matrix[C]) float64 {
	sum := 0.0
	n := m.Order()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := float64(m.At(i, j))
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}
