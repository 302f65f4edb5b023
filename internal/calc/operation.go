package calc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/san-kum/matcalc/internal/matrix"
)

// Operation selects the binary operator applied to the two operands.
type Operation int

const (
	Mul Operation = iota
	Add
	Sub
)

var operationNames = [...]string{Mul: "mul", Add: "add", Sub: "sub"}

var operationSymbols = [...]string{Mul: "×", Add: "+", Sub: "−"}

var operationAliases = map[string]Operation{
	"mul": Mul, "multiply": Mul, "times": Mul, "*": Mul, "x": Mul, "×": Mul,
	"add": Add, "plus": Add, "+": Add,
	"sub": Sub, "subtract": Sub, "minus": Sub, "-": Sub, "−": Sub,
}

// Operations lists the operators in selector order.
func Operations() []Operation {
	return []Operation{Mul, Add, Sub}
}

// OperationNames lists the canonical operator names in selector order.
func OperationNames() []string {
	return append([]string(nil), operationNames[:]...)
}

// String returns the operator symbol.
func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationSymbols) {
		return "?"
	}
	return operationSymbols[op]
}

// Name returns the canonical name: mul, add or sub.
func (op Operation) Name() string {
	if op < 0 || int(op) >= len(operationNames) {
		return "unknown"
	}
	return operationNames[op]
}

// Next returns the operator after op in selector order, wrapping around.
func (op Operation) Next() Operation {
	return (op + 1) % Operation(len(operationNames))
}

// ParseOperation accepts canonical names, symbols and a few aliases,
// ignoring case and surrounding space.
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if op, ok := operationAliases[key]; ok {
		return op, nil
	}
	return Mul, unknownf(ErrUnknownOperation, s, OperationNames())
}

// Apply evaluates a op b. It panics on an Operation outside Mul, Add, Sub.
func Apply[C matrix.Cells](op Operation, a, b matrix.Matrix[C]) matrix.Matrix[C] {
	switch op {
	case Mul:
		return a.Mul(b)
	case Add:
		return a.Add(b)
	case Sub:
		return a.Sub(b)
	}
	panic(fmt.Sprintf("calc: invalid operation %d", int(op)))
}

// Result pairs an operator with the value it produced.
type Result[C matrix.Cells] struct {
	Op    Operation
	Value matrix.Matrix[C]
}

// ApplyAll evaluates every operator on a and b, one goroutine each.
// Results come back in selector order.
func ApplyAll[C matrix.Cells](a, b matrix.Matrix[C]) []Result[C] {
	ops := Operations()
	results := make([]Result[C], len(ops))

	var wg sync.WaitGroup
	for i, op := range ops {
		wg.Add(1)
		go func(i int, op Operation) {
			defer wg.Done()
			results[i] = Result[C]{Op: op, Value: Apply(op, a, b)}
		}(i, op)
	}
	wg.Wait()

	return results
}
