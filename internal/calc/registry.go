package calc

import (
	"sort"

	"github.com/san-kum/matcalc/internal/matrix"
)

// Fill writes a preset into an order-n matrix through set. Cells it does not
// touch stay zero.
type Fill func(n int, set func(row, col int, v float32))

type preset struct {
	desc string
	fill Fill
}

// Registry maps preset names to operand generators. Presets are code, not
// data: they are built for whatever order the caller asks for.
type Registry struct {
	presets map[string]preset
}

func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]preset)}

	r.Register("zero", "all elements 0", func(n int, set func(int, int, float32)) {})
	r.Register("identity", "1 on the diagonal", func(n int, set func(int, int, float32)) {
		for i := 0; i < n; i++ {
			set(i, i, 1)
		}
	})
	r.Register("example-a", "[[1,2],[3,4]] in the top-left corner", topLeft([]float32{1, 2, 3, 4}))
	r.Register("example-b", "[[5,6],[7,8]] in the top-left corner", topLeft([]float32{5, 6, 7, 8}))
	r.Register("counting", "1..N² in row-major order", func(n int, set func(int, int, float32)) {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				set(i, j, float32(i*n+j+1))
			}
		}
	})
	r.Register("shift", "1 on the superdiagonal", func(n int, set func(int, int, float32)) {
		for i := 0; i+1 < n; i++ {
			set(i, i+1, 1)
		}
	})
	r.Register("scale2", "2 on the diagonal", func(n int, set func(int, int, float32)) {
		for i := 0; i < n; i++ {
			set(i, i, 2)
		}
	})

	return r
}

// topLeft places a 2×2 block, clipped to the matrix order.
func topLeft(block []float32) Fill {
	return func(n int, set func(int, int, float32)) {
		for i := 0; i < 2 && i < n; i++ {
			for j := 0; j < 2 && j < n; j++ {
				set(i, j, block[i*2+j])
			}
		}
	}
}

// Register adds or replaces a preset.
func (r *Registry) Register(name, desc string, fill Fill) {
	r.presets[name] = preset{desc: desc, fill: fill}
}

// Names returns the preset names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a preset.
func (r *Registry) Describe(name string) string {
	return r.presets[name].desc
}

// Preset builds the named operand at order N.
func Preset[C matrix.Cells](r *Registry, name string) (matrix.Matrix[C], error) {
	var m matrix.Matrix[C]
	p, ok := r.presets[name]
	if !ok {
		return m, unknownf(ErrUnknownPreset, name, r.Names())
	}
	p.fill(m.Order(), m.Set)
	return m, nil
}
