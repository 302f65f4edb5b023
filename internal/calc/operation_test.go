package calc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/matrix"
)

var _ = Describe("Operation", func() {
	a := matrix.New(matrix.Size2{1, 2, 3, 4})
	b := matrix.New(matrix.Size2{5, 6, 7, 8})

	It("renders symbols and names", func() {
		Expect(calc.Mul.String()).To(Equal("×"))
		Expect(calc.Add.String()).To(Equal("+"))
		Expect(calc.Sub.String()).To(Equal("−"))
		Expect(calc.OperationNames()).To(Equal([]string{"mul", "add", "sub"}))
		Expect(calc.Operation(9).Name()).To(Equal("unknown"))
	})

	DescribeTable("parsing",
		func(in string, want calc.Operation) {
			op, err := calc.ParseOperation(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(op).To(Equal(want))
		},
		Entry("name", "mul", calc.Mul),
		Entry("upper case", " ADD ", calc.Add),
		Entry("ascii star", "*", calc.Mul),
		Entry("letter x", "x", calc.Mul),
		Entry("times symbol", "×", calc.Mul),
		Entry("hyphen", "-", calc.Sub),
		Entry("minus sign", "−", calc.Sub),
		Entry("long name", "subtract", calc.Sub),
	)

	It("suggests a close name for typos", func() {
		_, err := calc.ParseOperation("mull")
		Expect(err).To(MatchError(calc.ErrUnknownOperation))
		Expect(err.Error()).To(ContainSubstring(`did you mean "mul"?`))

		_, err = calc.ParseOperation("determinant")
		Expect(err).To(MatchError(calc.ErrUnknownOperation))
		Expect(err.Error()).To(ContainSubstring("available: mul, add, sub"))
	})

	It("applies each operator", func() {
		Expect(calc.Apply(calc.Mul, a, b)).To(Equal(matrix.New(matrix.Size2{19, 22, 43, 50})))
		Expect(calc.Apply(calc.Add, a, b)).To(Equal(matrix.New(matrix.Size2{6, 8, 10, 12})))
		Expect(calc.Apply(calc.Sub, a, b)).To(Equal(matrix.New(matrix.Size2{-4, -4, -4, -4})))
	})

	It("panics on an operation outside the selector", func() {
		Expect(func() { calc.Apply(calc.Operation(7), a, b) }).To(PanicWith(ContainSubstring("invalid operation 7")))
	})

	It("applies every operator concurrently in selector order", func() {
		results := calc.ApplyAll(a, b)
		Expect(results).To(HaveLen(3))
		for i, op := range calc.Operations() {
			Expect(results[i].Op).To(Equal(op))
			Expect(results[i].Value).To(Equal(calc.Apply(op, a, b)))
		}
	})
})
