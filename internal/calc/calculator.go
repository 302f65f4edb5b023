package calc

import "github.com/san-kum/matcalc/internal/matrix"

// Side names one of the two operands.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Other returns the opposite operand.
func (s Side) Other() Side {
	if s == Right {
		return Left
	}
	return Right
}

// Calculator holds two operands, the selected operator and the last result.
// Every mutator reports whether it changed anything; the result is only
// recomputed when it did.
//
// A Calculator is not safe for concurrent use.
type Calculator[C matrix.Cells] struct {
	operands [2]matrix.Matrix[C]
	op       Operation
	result   matrix.Matrix[C]
	recalcs  int
}

// NewCalculator starts with identity operands under multiplication.
func NewCalculator[C matrix.Cells]() *Calculator[C] {
	c := &Calculator[C]{
		operands: [2]matrix.Matrix[C]{matrix.Identity[C](), matrix.Identity[C]()},
		op:       Mul,
	}
	c.result = Apply(c.op, c.operands[Left], c.operands[Right])
	return c
}

func (c *Calculator[C]) Left() matrix.Matrix[C]  { return c.operands[Left] }
func (c *Calculator[C]) Right() matrix.Matrix[C] { return c.operands[Right] }
func (c *Calculator[C]) Result() matrix.Matrix[C] { return c.result }
func (c *Calculator[C]) Operation() Operation     { return c.op }

// Operand returns the matrix on the given side.
func (c *Calculator[C]) Operand(side Side) matrix.Matrix[C] {
	return c.operands[side]
}

// Recalcs reports how many times the result has been recomputed after
// construction.
func (c *Calculator[C]) Recalcs() int {
	return c.recalcs
}

// Order returns the matrix order the calculator works in.
func (c *Calculator[C]) Order() int {
	return c.result.Order()
}

// SetOperand replaces one operand.
func (c *Calculator[C]) SetOperand(side Side, m matrix.Matrix[C]) bool {
	if c.operands[side] == m {
		return false
	}
	c.operands[side] = m
	c.recalc()
	return true
}

func (c *Calculator[C]) SetLeft(m matrix.Matrix[C]) bool  { return c.SetOperand(Left, m) }
func (c *Calculator[C]) SetRight(m matrix.Matrix[C]) bool { return c.SetOperand(Right, m) }

// SetCell writes one element of an operand. Indices follow matrix.Set and
// panic when out of range.
func (c *Calculator[C]) SetCell(side Side, row, col int, v float32) bool {
	if c.operands[side].At(row, col) == v {
		return false
	}
	c.operands[side].Set(row, col, v)
	c.recalc()
	return true
}

// Nudge adds delta to one element, like dragging a value field.
func (c *Calculator[C]) Nudge(side Side, row, col int, delta float32) bool {
	return c.SetCell(side, row, col, c.operands[side].At(row, col)+delta)
}

// SetOperation selects the operator.
func (c *Calculator[C]) SetOperation(op Operation) bool {
	if c.op == op {
		return false
	}
	c.op = op
	c.recalc()
	return true
}

// CycleOperation advances to the next operator and returns it.
func (c *Calculator[C]) CycleOperation() Operation {
	c.SetOperation(c.op.Next())
	return c.op
}

// ResetZero replaces an operand with the zero matrix.
func (c *Calculator[C]) ResetZero(side Side) bool {
	return c.SetOperand(side, matrix.Zero[C]())
}

// ResetIdentity replaces an operand with the identity matrix.
func (c *Calculator[C]) ResetIdentity(side Side) bool {
	return c.SetOperand(side, matrix.Identity[C]())
}

func (c *Calculator[C]) recalc() {
	c.result = Apply(c.op, c.operands[Left], c.operands[Right])
	c.recalcs++
}
