package dtmodel

import (
	"errors"
	"math"
	"testing"

	"github.com/tn-aixpa/dt-model/sym"
)

func TestSymIndex_CompilationOrder(t *testing.T) {
	a, b := sym.V("a"), sym.V("b")
	e := sym.Add(a, sym.Mul(sym.C(2), b)) // a + 2*b

	ix, err := NewSymIndex("load", e, []*sym.Var{a, b})
	if err != nil {
		t.Fatalf("NewSymIndex failed: %v", err)
	}
	if got := ix.Value().Fn.At(3, 5); got != 13 {
		t.Errorf("At(3, 5) = %g, want 13", got)
	}

	// Reordering the context variables repositions the arguments;
	// the algebraic form is untouched.
	changed, err := ix.SetContextVars([]*sym.Var{b, a})
	if err != nil {
		t.Fatalf("SetContextVars failed: %v", err)
	}
	if !changed {
		t.Error("reordering should report a change")
	}
	if got := ix.Value().Fn.At(5, 3); got != 13 {
		t.Errorf("At(5, 3) after reorder = %g, want 13", got)
	}
	if !ix.SymValue().Equal(e) {
		t.Error("sym value must be unchanged by a cvs write")
	}
}

func TestSymIndex_SyncInvariant(t *testing.T) {
	a, b := sym.V("a"), sym.V("b")
	ix, err := NewSymIndex("load", sym.Add(a, b), []*sym.Var{a, b})
	if err != nil {
		t.Fatalf("NewSymIndex failed: %v", err)
	}

	// A mutation sequence touching both sides of the state.
	if _, err := ix.SetSymValue(sym.Mul(a, b)); err != nil {
		t.Fatalf("SetSymValue failed: %v", err)
	}
	if _, err := ix.SetContextVars([]*sym.Var{b, a}); err != nil {
		t.Fatalf("SetContextVars failed: %v", err)
	}
	if _, err := ix.SetValue(sym.Sub(sym.Pow(a, sym.C(2)), b)); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	// value == compile(sym_value, cvs) pointwise over a grid.
	want, err := sym.Compile(ix.SymValue(), ix.ContextVars())
	if err != nil {
		t.Fatalf("reference compile failed: %v", err)
	}
	for _, x := range []float64{-2, -1, 0, 1, 2, 3.5} {
		for _, y := range []float64{-1, 0, 0.5, 2, 10} {
			got := ix.Value().Fn.At(x, y)
			ref := want.At(x, y)
			if got != ref && !(math.IsNaN(got) && math.IsNaN(ref)) {
				t.Fatalf("At(%g, %g) = %g, reference %g", x, y, got, ref)
			}
		}
	}
}

func TestSymIndex_SetValueComparesAlgebraicForm(t *testing.T) {
	a := sym.V("a")
	e := sym.Add(a, sym.C(1))
	ix, err := NewSymIndex("load", e, []*sym.Var{a})
	if err != nil {
		t.Fatalf("NewSymIndex failed: %v", err)
	}

	before := ix.Value().Fn

	// Writing a structurally identical expression is a no-op; the
	// compiled program is not rebuilt.
	changed, err := ix.SetValue(sym.Add(sym.V("a"), sym.C(1)))
	if err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if changed {
		t.Error("equal expression write should be a no-op")
	}
	if ix.Value().Fn != before {
		t.Error("no-op write must not recompile")
	}

	changed, err = ix.SetValue(sym.Add(a, sym.C(2)))
	if err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if !changed {
		t.Error("different expression should report a change")
	}
	if got := ix.Value().Fn.At(1); got != 3 {
		t.Errorf("At(1) = %g, want 3", got)
	}
}

func TestSymIndex_NilContextVarsLeavesValue(t *testing.T) {
	a := sym.V("a")
	ix, err := NewSymIndex("load", sym.Mul(a, sym.C(2)), []*sym.Var{a})
	if err != nil {
		t.Fatalf("NewSymIndex failed: %v", err)
	}
	before := ix.Value().Fn

	changed, err := ix.SetContextVars(nil)
	if err != nil {
		t.Fatalf("SetContextVars(nil) failed: %v", err)
	}
	if !changed {
		t.Error("nil assignment over non-nil cvs should report a change")
	}
	if ix.ContextVars() != nil {
		t.Error("cvs should be nil after assignment")
	}
	// The stale compiled value is deliberately left in place.
	if ix.Value().Fn != before {
		t.Error("nil cvs must leave the compiled value untouched")
	}
}

func TestSymIndex_ConstructionErrors(t *testing.T) {
	a, b := sym.V("a"), sym.V("b")

	// Expression references a variable absent from cvs.
	_, err := NewSymIndex("load", sym.Add(a, b), []*sym.Var{a})
	if !errors.Is(err, sym.ErrUnboundVariable) {
		t.Errorf("error = %v, want ErrUnboundVariable", err)
	}

	// Nil cvs: closed expressions compile to an arity-0 program,
	// open expressions fail.
	ix, err := NewSymIndex("k", sym.Mul(sym.C(3), sym.C(4)), nil)
	if err != nil {
		t.Fatalf("closed expression with nil cvs should compile: %v", err)
	}
	if got := ix.Value().Fn.At(); got != 12 {
		t.Errorf("At() = %g, want 12", got)
	}

	if _, err := NewSymIndex("load", a, nil); !errors.Is(err, sym.ErrUnboundVariable) {
		t.Errorf("open expression with nil cvs: error = %v, want ErrUnboundVariable", err)
	}
}

func TestSymIndex_FailedRecompileLeavesStateUnchanged(t *testing.T) {
	a, b := sym.V("a"), sym.V("b")
	e := sym.Add(a, sym.C(1))
	ix, err := NewSymIndex("load", e, []*sym.Var{a})
	if err != nil {
		t.Fatalf("NewSymIndex failed: %v", err)
	}
	before := ix.Value().Fn

	// New expression references b, which is not in cvs.
	if _, err := ix.SetSymValue(sym.Add(a, b)); err == nil {
		t.Fatal("expected recompilation error")
	}
	if !ix.SymValue().Equal(e) {
		t.Error("failed recompile must not change the sym value")
	}
	if ix.Value().Fn != before {
		t.Error("failed recompile must not change the compiled value")
	}

	// New cvs no longer cover the expression's variable.
	if _, err := ix.SetContextVars([]*sym.Var{b}); err == nil {
		t.Fatal("expected recompilation error")
	}
	if len(ix.ContextVars()) != 1 || ix.ContextVars()[0].Name() != "a" {
		t.Error("failed recompile must not change cvs")
	}
}

func TestSymIndex_NoNumericParams(t *testing.T) {
	a := sym.V("a")
	ix, err := NewSymIndex("load", a, []*sym.Var{a})
	if err != nil {
		t.Fatalf("NewSymIndex failed: %v", err)
	}
	if ix.Params() != nil {
		t.Error("symbolic indices own no numeric parameters")
	}
	if _, err := ix.SetParam("loc", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("SetParam error = %v, want ErrUnknownParam", err)
	}
}
