package sym

import (
	"errors"
	"fmt"
	"strings"
)

// Compilation failure causes.
var (
	// ErrUnboundVariable indicates the expression references a
	// variable absent from the binding list.
	ErrUnboundVariable = errors.New("unbound variable")

	// ErrDuplicateVariable indicates the binding list names the same
	// variable twice, making positional binding ambiguous.
	ErrDuplicateVariable = errors.New("duplicate variable")
)

// CompilationError reports why an expression could not be compiled
// against a variable list. It wraps one of the sentinel causes above.
type CompilationError struct {
	Expr  Expr     // the expression that failed to compile
	Names []string // offending variable names
	cause error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("sym: cannot compile %q: %v: %s",
		e.Expr, e.cause, strings.Join(e.Names, ", "))
}

func (e *CompilationError) Unwrap() error { return e.cause }

// Program is a numeric function compiled from a symbolic expression.
// Arguments are positional, in the order of the variable list given
// to Compile. A Program is immutable and safe for concurrent calls.
type Program struct {
	expr  Expr
	names []string
	fn    evalFn
}

// Compile translates e into a numeric function of the variables in
// vars, in that order. Variables are matched by name. Compilation
// fails with a *CompilationError if e references a variable not in
// vars, or if vars contains duplicate names; extra variables in vars
// that e never uses are allowed.
func Compile(e Expr, vars []*Var) (*Program, error) {
	slots := make(map[string]int, len(vars))
	names := make([]string, len(vars))
	for i, v := range vars {
		if _, seen := slots[v.name]; seen {
			return nil, &CompilationError{Expr: e, Names: []string{v.name}, cause: ErrDuplicateVariable}
		}
		slots[v.name] = i
		names[i] = v.name
	}

	fn, ok := e.compile(slots)
	if !ok {
		var missing []string
		for _, name := range Vars(e) {
			if _, bound := slots[name]; !bound {
				missing = append(missing, name)
			}
		}
		return nil, &CompilationError{Expr: e, Names: missing, cause: ErrUnboundVariable}
	}

	return &Program{expr: e, names: names, fn: fn}, nil
}

// Arity returns the number of positional arguments the program takes.
func (p *Program) Arity() int { return len(p.names) }

// Source returns the expression the program was compiled from.
func (p *Program) Source() Expr { return p.expr }

// String renders the program as name(args) = expression.
func (p *Program) String() string {
	return fmt.Sprintf("(%s) -> %s", strings.Join(p.names, ", "), p.expr)
}

// At evaluates the program at the given point. The argument count
// must match Arity; a mismatch is a programming error and panics.
func (p *Program) At(args ...float64) float64 {
	if len(args) != len(p.names) {
		panic(fmt.Sprintf("sym: program takes %d arguments, got %d", len(p.names), len(args)))
	}
	return p.fn(args)
}

// Across evaluates the program pointwise over columns of sample
// values, one column per variable. All columns must have the same
// length. This is the vectorized entry point used when an index is
// evaluated over a batch of context-variable samples.
func (p *Program) Across(cols ...[]float64) ([]float64, error) {
	if len(cols) != len(p.names) {
		return nil, fmt.Errorf("sym: program takes %d columns, got %d", len(p.names), len(cols))
	}
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	for i, col := range cols {
		if len(col) != n {
			return nil, fmt.Errorf("sym: column %d has %d samples, want %d", i, len(col), n)
		}
	}

	out := make([]float64, n)
	env := make([]float64, len(cols))
	for row := 0; row < n; row++ {
		for i, col := range cols {
			env[i] = col[row]
		}
		out[row] = p.fn(env)
	}
	return out, nil
}
