package dtmodel

import (
	"errors"
	"fmt"

	"github.com/tn-aixpa/dt-model/dist"
	"github.com/tn-aixpa/dt-model/sym"
)

// ErrUnknownParam indicates a parameter name an index variant does
// not own.
var ErrUnknownParam = errors.New("unknown parameter")

// Kind discriminates what an index's value is.
type Kind int

const (
	// KindConstant: the value is a single scalar.
	KindConstant Kind = iota

	// KindDistribution: the value is a parametric distribution.
	KindDistribution

	// KindCompiled: the value is a function compiled from a symbolic
	// expression over the index's context variables, in order.
	KindCompiled
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindDistribution:
		return "distribution"
	case KindCompiled:
		return "compiled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the evaluable an index produces: exactly one of the
// payload fields is meaningful, selected by Kind. Hosts switch on
// Kind and use the payload directly: a constant as-is, a
// distribution through its own method set, a compiled program called
// with one positional argument per context variable.
type Value struct {
	Kind     Kind
	Constant float64
	Dist     dist.Distribution
	Fn       *sym.Program
}

func (v Value) String() string {
	switch v.Kind {
	case KindConstant:
		return fmt.Sprintf("%g", v.Constant)
	case KindDistribution:
		return fmt.Sprintf("%v", v.Dist)
	default:
		return fmt.Sprintf("%v", v.Fn)
	}
}

// Index is a named variable of a demand/capacity model. Concrete
// variants own a small set of mutable shape parameters; mutating one
// through its setter rebuilds the value from the complete current
// parameter set, and a write of an identical value is a no-op.
//
// An index belongs to exactly one model and is mutated in place when
// a scenario overrides its parameters. Mutation is not synchronized;
// the caller serializes access.
type Index interface {
	// Name is the unique identifier within a model.
	Name() string

	// Group is a free-form tag for host-side grouping. Not
	// load-bearing for evaluation.
	Group() string

	// ContextVars returns the ordered free variables the value
	// depends on, or nil for indices that are constant with respect
	// to context.
	ContextVars() []*sym.Var

	// Value returns the current evaluable.
	Value() Value

	// Params returns the current shape parameters by name. Variants
	// without numeric parameters return nil.
	Params() map[string]float64

	// SetParam writes the named shape parameter, reporting whether
	// the value actually changed. Writing a parameter the variant
	// does not own fails with ErrUnknownParam.
	SetParam(name string, value float64) (bool, error)

	fmt.Stringer
}

// base carries the state every variant shares. name and group are
// immutable after construction.
type base struct {
	name  string
	group string
	cvs   []*sym.Var
	value Value
}

func (b *base) Name() string            { return b.name }
func (b *base) Group() string           { return b.group }
func (b *base) ContextVars() []*sym.Var { return b.cvs }
func (b *base) Value() Value            { return b.value }

// Option configures an index at construction.
type Option func(*base)

// WithGroup tags the index with a host-side grouping label.
func WithGroup(group string) Option {
	return func(b *base) { b.group = group }
}

// ============================================================
// ConstIndex
// ============================================================

// ConstIndex is an index with a single scalar value.
type ConstIndex struct {
	base
	v float64
}

// NewConstIndex returns a constant index with value v.
func NewConstIndex(name string, v float64, opts ...Option) *ConstIndex {
	ix := &ConstIndex{base: base{name: name}, v: v}
	for _, opt := range opts {
		opt(&ix.base)
	}
	ix.value = Value{Kind: KindConstant, Constant: v}
	return ix
}

// V returns the constant value.
func (ix *ConstIndex) V() float64 { return ix.v }

// SetV writes the constant, reporting whether it changed.
func (ix *ConstIndex) SetV(v float64) bool {
	if ix.v == v {
		return false
	}
	ix.v = v
	ix.value = Value{Kind: KindConstant, Constant: v}
	return true
}

func (ix *ConstIndex) Params() map[string]float64 {
	return map[string]float64{"v": ix.v}
}

func (ix *ConstIndex) SetParam(name string, value float64) (bool, error) {
	if name != "v" {
		return false, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, ix.name, name)
	}
	return ix.SetV(value), nil
}

func (ix *ConstIndex) String() string {
	return fmt.Sprintf("const_idx(%g)", ix.v)
}
