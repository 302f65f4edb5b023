package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/matcalc/internal/calc"
	"github.com/san-kum/matcalc/internal/matrix"
	"github.com/san-kum/matcalc/internal/viz"
)

// MaxOrder is the largest order the command line accepts.
const MaxOrder = 8

// runner carries out the order-dependent part of a command. Go methods
// cannot take type parameters, so each order gets its own instantiation
// behind this interface.
type runner interface {
	evaluate(out io.Writer, ops []calc.Operation, a, b string) error
	powers(out io.Writer, a string, k int) error
	show(out io.Writer, kind string) error
	bench(w io.Writer, iterations int) error
}

type printer struct {
	theme     viz.Theme
	precision int
	plain     bool
}

type orderRunner[C matrix.Cells] struct {
	printer
	reg *calc.Registry
}

func runnerFor(n int, p printer) (runner, error) {
	reg := calc.NewRegistry()
	switch n {
	case 1:
		return orderRunner[[1]float32]{p, reg}, nil
	case 2:
		return orderRunner[matrix.Size2]{p, reg}, nil
	case 3:
		return orderRunner[matrix.Size3]{p, reg}, nil
	case 4:
		return orderRunner[matrix.Size4]{p, reg}, nil
	case 5:
		return orderRunner[[25]float32]{p, reg}, nil
	case 6:
		return orderRunner[[36]float32]{p, reg}, nil
	case 7:
		return orderRunner[[49]float32]{p, reg}, nil
	case 8:
		return orderRunner[[64]float32]{p, reg}, nil
	}
	return nil, fmt.Errorf("order %d not supported (1..%d)", n, MaxOrder)
}

// operand reads a preset name or literal values.
func (r orderRunner[C]) operand(s string) (matrix.Matrix[C], error) {
	if name := strings.TrimSpace(s); isPresetName(r.reg, name) {
		return calc.Preset[C](r.reg, name)
	}
	return calc.ParseMatrix[C](s)
}

func (r orderRunner[C]) evaluate(out io.Writer, ops []calc.Operation, as, bs string) error {
	a, err := r.operand(as)
	if err != nil {
		return fmt.Errorf("operand a: %w", err)
	}
	b, err := r.operand(bs)
	if err != nil {
		return fmt.Errorf("operand b: %w", err)
	}

	results := calc.ApplyAll(a, b)
	for _, res := range results {
		if !containsOp(ops, res.Op) {
			continue
		}
		if r.plain {
			if len(ops) > 1 {
				fmt.Fprintf(out, "%s: ", res.Op.Name())
			}
			fmt.Fprintln(out, res.Value)
			continue
		}
		fmt.Fprintln(out, r.theme.RenderEquation(
			r.render("A", a), res.Op.String(), r.render("B", b), r.render("", res.Value)))
	}
	return nil
}

func (r orderRunner[C]) powers(out io.Writer, as string, k int) error {
	a, err := r.operand(as)
	if err != nil {
		return err
	}
	series, err := calc.PowerSeries(a, k)
	if err != nil {
		return err
	}

	result := series[k]
	if r.plain {
		fmt.Fprintln(out, result)
	} else {
		fmt.Fprintln(out, r.render(fmt.Sprintf("A^%d", k), result))
	}

	if k < 1 {
		return nil
	}
	traces := make([]float64, len(series))
	norms := make([]float64, len(series))
	for i, m := range series {
		traces[i] = plottable(calc.Trace(m))
		norms[i] = plottable(calc.Frobenius(m))
	}
	graph := asciigraph.PlotMany([][]float64{traces, norms},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption(fmt.Sprintf("trace (cyan) and frobenius norm (magenta) of A^0..A^%d", k)),
	)
	fmt.Fprintln(out)
	fmt.Fprintln(out, graph)
	return nil
}

func (r orderRunner[C]) show(out io.Writer, kind string) error {
	m := matrix.Zero[C]()
	if kind == "identity" {
		m = matrix.Identity[C]()
	}
	if r.plain {
		fmt.Fprintln(out, m)
		return nil
	}
	fmt.Fprintln(out, r.render(kind, m))
	return nil
}

func (r orderRunner[C]) bench(w io.Writer, iterations int) error {
	a, err := calc.Preset[C](r.reg, "counting")
	if err != nil {
		return err
	}
	b := matrix.Identity[C]()
	n := a.Order()

	for _, o := range calc.Operations() {
		acc := a
		start := time.Now()
		for i := 0; i < iterations; i++ {
			acc = calc.Apply(o, acc, b)
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%d×%d\t%s\t%d\t%v\t%.1f\n",
			n, n, o.Name(), iterations, elapsed.Round(time.Microsecond),
			float64(elapsed.Nanoseconds())/float64(iterations))
	}
	return nil
}

func (r orderRunner[C]) render(title string, m matrix.Matrix[C]) string {
	return r.theme.RenderMatrix(viz.MatrixView{
		Title:     title,
		Rows:      m.Rows(),
		Precision: r.precision,
	})
}

// plottable maps ±Inf to NaN, which asciigraph leaves as a gap.
func plottable(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func isPresetName(reg *calc.Registry, s string) bool {
	for _, name := range reg.Names() {
		if name == s {
			return true
		}
	}
	return false
}

func containsOp(ops []calc.Operation, op calc.Operation) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

// inferOrder picks the order from --size, then the first literal operand,
// then the configured size.
func inferOrder(cmd *cobra.Command, fallback int, operands ...string) (int, error) {
	if cmd.Flags().Changed("size") {
		return size, nil
	}
	reg := calc.NewRegistry()
	for _, s := range operands {
		if isPresetName(reg, strings.TrimSpace(s)) {
			continue
		}
		rows, err := calc.ParseRows(s)
		if err != nil {
			return 0, err
		}
		return len(rows), nil
	}
	return fallback, nil
}

// newPrinter loads the configuration and returns the styling it selects
// together with the configured size.
func newPrinter(cmd *cobra.Command) (printer, int, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return printer{}, 0, err
	}
	return printer{theme: viz.GetTheme(cfg.Theme), precision: cfg.Precision, plain: plain}, cfg.Size, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	var ops []calc.Operation
	if strings.EqualFold(strings.TrimSpace(op), "all") {
		ops = calc.Operations()
	} else {
		o, err := calc.ParseOperation(op)
		if err != nil {
			return report(err)
		}
		ops = []calc.Operation{o}
	}

	p, fallback, err := newPrinter(cmd)
	if err != nil {
		return report(err)
	}
	n, err := inferOrder(cmd, fallback, left, right)
	if err != nil {
		return report(err)
	}
	r, err := runnerFor(n, p)
	if err != nil {
		return report(err)
	}
	return report(r.evaluate(cmd.OutOrStdout(), ops, left, right))
}

func runPower(cmd *cobra.Command, args []string) error {
	p, fallback, err := newPrinter(cmd)
	if err != nil {
		return report(err)
	}
	n, err := inferOrder(cmd, fallback, base)
	if err != nil {
		return report(err)
	}
	r, err := runnerFor(n, p)
	if err != nil {
		return report(err)
	}
	return report(r.powers(cmd.OutOrStdout(), base, power))
}

func constantCmd(kind string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		n, err := parseOrder(args[0])
		if err != nil {
			return report(err)
		}
		p, _, err := newPrinter(cmd)
		if err != nil {
			return report(err)
		}
		r, err := runnerFor(n, p)
		if err != nil {
			return report(err)
		}
		return report(r.show(cmd.OutOrStdout(), kind))
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	orders := []int{2, 3, 4}
	if len(args) > 0 {
		n, err := parseOrder(args[0])
		if err != nil {
			return report(err)
		}
		orders = []int{n}
	}
	if iters < 1 {
		return report(fmt.Errorf("iterations must be positive, got %d", iters))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d iterations per operator\n\n", iters)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tOP\tITER\tTIME\tNS/OP")
	for _, n := range orders {
		r, err := runnerFor(n, printer{})
		if err != nil {
			return report(err)
		}
		if err := r.bench(w, iters); err != nil {
			return report(err)
		}
	}
	return w.Flush()
}
