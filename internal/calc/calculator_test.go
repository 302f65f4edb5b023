package calc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/matrix"
)

var _ = Describe("Calculator", func() {
	var c *calc.Calculator[matrix.Size4]

	BeforeEach(func() {
		c = calc.NewCalculator[matrix.Size4]()
	})

	It("starts with identity operands under multiplication", func() {
		Expect(c.Left()).To(Equal(matrix.Identity[matrix.Size4]()))
		Expect(c.Right()).To(Equal(matrix.Identity[matrix.Size4]()))
		Expect(c.Operation()).To(Equal(calc.Mul))
		Expect(c.Result()).To(Equal(matrix.Identity[matrix.Size4]()))
		Expect(c.Order()).To(Equal(4))
		Expect(c.Recalcs()).To(BeZero())
	})

	Describe("editing a cell", func() {
		It("recomputes the result", func() {
			Expect(c.SetCell(calc.Left, 0, 1, 3)).To(BeTrue())
			Expect(c.Result().At(0, 1)).To(Equal(float32(3)))
			Expect(c.Recalcs()).To(Equal(1))
		})

		It("skips recomputation when the value is unchanged", func() {
			Expect(c.SetCell(calc.Left, 0, 0, 1)).To(BeFalse())
			Expect(c.Recalcs()).To(BeZero())
		})

		It("nudges by a delta", func() {
			Expect(c.Nudge(calc.Right, 2, 2, 0.5)).To(BeTrue())
			Expect(c.Right().At(2, 2)).To(Equal(float32(1.5)))
			Expect(c.Result().At(2, 2)).To(Equal(float32(1.5)))
		})

		It("panics on an out-of-range cell", func() {
			Expect(func() { c.SetCell(calc.Left, 4, 0, 1) }).To(PanicWith(BeAssignableToTypeOf(&matrix.IndexError{})))
			Expect(c.Recalcs()).To(BeZero())
		})
	})

	Describe("switching operators", func() {
		BeforeEach(func() {
			Expect(c.SetLeft(matrix.New(matrix.Size4{1, 2, 0, 0, 3, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}))).To(BeTrue())
			Expect(c.SetRight(matrix.New(matrix.Size4{5, 6, 0, 0, 7, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}))).To(BeTrue())
		})

		It("multiplies", func() {
			Expect(c.Result()).To(Equal(matrix.New(matrix.Size4{19, 22, 0, 0, 43, 50, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})))
		})

		It("adds", func() {
			Expect(c.SetOperation(calc.Add)).To(BeTrue())
			Expect(c.Result()).To(Equal(matrix.New(matrix.Size4{6, 8, 0, 0, 10, 12, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})))
		})

		It("subtracts", func() {
			c.SetOperation(calc.Sub)
			Expect(c.Result()).To(Equal(matrix.New(matrix.Size4{-4, -4, 0, 0, -4, -4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})))
		})

		It("cycles mul → add → sub → mul", func() {
			Expect(c.CycleOperation()).To(Equal(calc.Add))
			Expect(c.CycleOperation()).To(Equal(calc.Sub))
			Expect(c.CycleOperation()).To(Equal(calc.Mul))
		})

		It("ignores selecting the current operator", func() {
			before := c.Recalcs()
			Expect(c.SetOperation(calc.Mul)).To(BeFalse())
			Expect(c.Recalcs()).To(Equal(before))
		})
	})

	Describe("resets", func() {
		It("resets an operand to zero", func() {
			Expect(c.ResetZero(calc.Right)).To(BeTrue())
			Expect(c.Right()).To(Equal(matrix.Zero[matrix.Size4]()))
			Expect(c.Result()).To(Equal(matrix.Zero[matrix.Size4]()))
		})

		It("resets an operand to identity", func() {
			c.ResetZero(calc.Left)
			Expect(c.ResetIdentity(calc.Left)).To(BeTrue())
			Expect(c.Result()).To(Equal(matrix.Identity[matrix.Size4]()))
			Expect(c.ResetIdentity(calc.Left)).To(BeFalse())
		})

		It("leaves the other operand alone", func() {
			c.ResetZero(calc.Left)
			Expect(c.Operand(calc.Right)).To(Equal(matrix.Identity[matrix.Size4]()))
			Expect(calc.Left.Other()).To(Equal(calc.Right))
		})
	})
})
