package dtmodel

import (
	"fmt"

	"github.com/tn-aixpa/dt-model/sym"
)

// SymIndex is an index whose value is compiled from a symbolic
// expression over named context variables. It keeps two pieces of
// state: the algebraic form (SymValue) and its numeric projection
// (Value), with the invariant that the value is always the
// compilation of the current expression against the current context
// variables. Every mutation that touches either side recompiles
// before assigning, so a failed recompilation leaves the index
// unchanged.
type SymIndex struct {
	base
	symValue sym.Expr
}

// NewSymIndex compiles expr over cvs, in order, and returns the
// index. A nil cvs compiles over zero variables, so closed
// expressions stay directly evaluable while an expression with free
// variables fails. Compilation failure (an expression referencing a
// variable not in cvs) is a construction error.
func NewSymIndex(name string, expr sym.Expr, cvs []*sym.Var, opts ...Option) (*SymIndex, error) {
	ix := &SymIndex{base: base{name: name, cvs: cvs}, symValue: expr}
	for _, opt := range opts {
		opt(&ix.base)
	}
	p, err := sym.Compile(expr, cvs)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", name, err)
	}
	ix.value = Value{Kind: KindCompiled, Fn: p}
	return ix, nil
}

// SymValue returns the algebraic form of the index.
func (ix *SymIndex) SymValue() sym.Expr { return ix.symValue }

// SetValue replaces the expression behind the value. The comparison
// is against the stored algebraic form, the same as SetSymValue; both
// setters keep the compiled value and the expression in sync.
func (ix *SymIndex) SetValue(expr sym.Expr) (bool, error) {
	return ix.SetSymValue(expr)
}

// SetSymValue replaces the algebraic form, reporting whether it
// changed. On a change the value is recompiled against the current
// context variables from the new expression.
func (ix *SymIndex) SetSymValue(expr sym.Expr) (bool, error) {
	if ix.symValue.Equal(expr) {
		return false, nil
	}
	p, err := sym.Compile(expr, ix.cvs)
	if err != nil {
		return false, fmt.Errorf("index %s: %w", ix.name, err)
	}
	ix.value = Value{Kind: KindCompiled, Fn: p}
	ix.symValue = expr
	return true, nil
}

// SetContextVars replaces the ordered context variables, reporting
// whether they changed. On a change the value is recompiled from the
// existing expression against the new order. Assigning nil leaves
// the previously compiled value untouched: the index is treated as
// already constant with respect to context rather than decompiled.
func (ix *SymIndex) SetContextVars(cvs []*sym.Var) (bool, error) {
	if sameVars(ix.cvs, cvs) {
		return false, nil
	}
	if cvs == nil {
		ix.cvs = nil
		return true, nil
	}
	p, err := sym.Compile(ix.symValue, cvs)
	if err != nil {
		return false, fmt.Errorf("index %s: %w", ix.name, err)
	}
	ix.cvs = cvs
	ix.value = Value{Kind: KindCompiled, Fn: p}
	return true, nil
}

// Params returns nil: the mutable state of a symbolic index is its
// expression and variable order, not numeric shape parameters.
func (ix *SymIndex) Params() map[string]float64 { return nil }

// SetParam always fails with ErrUnknownParam.
func (ix *SymIndex) SetParam(name string, value float64) (bool, error) {
	return false, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, ix.name, name)
}

func (ix *SymIndex) String() string {
	return fmt.Sprintf("sym_idx(%v)", ix.symValue)
}

// sameVars reports whether two variable lists bind identically: same
// length, same names, same order.
func sameVars(a, b []*sym.Var) bool {
	if len(a) != len(b) {
		return false
	}
	if (a == nil) != (b == nil) {
		return false
	}
	for i := range a {
		if a[i].Name() != b[i].Name() {
			return false
		}
	}
	return true
}
