// Package sym provides a small symbolic expression kernel and a
// compiler that turns an expression plus an ordered variable list into
// a directly callable numeric function.
//
// Design goals:
//   - Zero external dependencies
//   - Deterministic compilation (pure function of expression and
//     variable order)
//   - Vectorized evaluation for batch back ends
//
// Expressions are immutable trees built from constructors:
//
//	a := sym.V("a")
//	b := sym.V("b")
//	e := sym.Add(a, sym.Mul(sym.C(2), b)) // a + 2*b
//
//	p, err := sym.Compile(e, []*sym.Var{a, b})
//	p.At(3, 5) // 13
package sym

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// evalFn evaluates a compiled node against the positional argument
// environment.
type evalFn func(env []float64) float64

// Expr is an immutable symbolic expression.
type Expr interface {
	// String returns an algebraic rendering of the expression.
	String() string

	// Equal reports structural equality with another expression.
	Equal(other Expr) bool

	// collectVars adds the names of free variables to set.
	collectVars(set map[string]struct{})

	// compile resolves variable references against the positional
	// slot table and returns an evaluator. ok is false if the node
	// references a variable missing from slots.
	compile(slots map[string]int) (fn evalFn, ok bool)
}

// Vars returns the sorted names of the free variables in e.
func Vars(e Expr) []string {
	set := make(map[string]struct{})
	e.collectVars(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ============================================================
// Const
// ============================================================

type constant struct{ v float64 }

// C returns a constant expression.
func C(v float64) Expr { return constant{v: v} }

func (c constant) String() string {
	return strconv.FormatFloat(c.v, 'g', -1, 64)
}

func (c constant) Equal(other Expr) bool {
	o, ok := other.(constant)
	return ok && c.v == o.v
}

func (c constant) collectVars(map[string]struct{}) {}

func (c constant) compile(map[string]int) (evalFn, bool) {
	v := c.v
	return func([]float64) float64 { return v }, true
}

// ============================================================
// Var
// ============================================================

// Var is a named free variable. The same *Var can be shared between
// expressions and the variable list given to Compile; binding is by
// name, so distinct instances with equal names are interchangeable.
type Var struct {
	name string
}

// V returns a new free variable with the given name.
func V(name string) *Var { return &Var{name: name} }

// Name returns the variable name.
func (v *Var) Name() string { return v.name }

func (v *Var) String() string { return v.name }

func (v *Var) Equal(other Expr) bool {
	o, ok := other.(*Var)
	return ok && v.name == o.name
}

func (v *Var) collectVars(set map[string]struct{}) { set[v.name] = struct{}{} }

func (v *Var) compile(slots map[string]int) (evalFn, bool) {
	slot, ok := slots[v.name]
	if !ok {
		return nil, false
	}
	return func(env []float64) float64 { return env[slot] }, true
}

// ============================================================
// Binary operators
// ============================================================

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
	opMin
	opMax
)

var binOpSymbol = map[binOp]string{
	opAdd: " + ",
	opSub: " - ",
	opMul: "*",
	opDiv: "/",
	opPow: "^",
}

type binary struct {
	op   binOp
	l, r Expr
}

// Add returns the sum of the given terms. With no terms it is 0.
func Add(terms ...Expr) Expr { return fold(opAdd, C(0), terms) }

// Mul returns the product of the given factors. With no factors it is 1.
func Mul(factors ...Expr) Expr { return fold(opMul, C(1), factors) }

// Sub returns a - b.
func Sub(a, b Expr) Expr { return binary{op: opSub, l: a, r: b} }

// Div returns a / b. Division by zero evaluates to ±Inf or NaN,
// following float64 semantics.
func Div(a, b Expr) Expr { return binary{op: opDiv, l: a, r: b} }

// Pow returns a raised to the power b.
func Pow(a, b Expr) Expr { return binary{op: opPow, l: a, r: b} }

// Min returns the pointwise minimum of a and b.
func Min(a, b Expr) Expr { return binary{op: opMin, l: a, r: b} }

// Max returns the pointwise maximum of a and b.
func Max(a, b Expr) Expr { return binary{op: opMax, l: a, r: b} }

// Neg returns -a.
func Neg(a Expr) Expr { return binary{op: opSub, l: C(0), r: a} }

func fold(op binOp, identity Expr, xs []Expr) Expr {
	if len(xs) == 0 {
		return identity
	}
	e := xs[0]
	for _, x := range xs[1:] {
		e = binary{op: op, l: e, r: x}
	}
	return e
}

func (b binary) String() string {
	switch b.op {
	case opMin:
		return "min(" + b.l.String() + ", " + b.r.String() + ")"
	case opMax:
		return "max(" + b.l.String() + ", " + b.r.String() + ")"
	case opAdd, opSub:
		return b.l.String() + binOpSymbol[b.op] + b.r.String()
	default:
		return paren(b.l) + binOpSymbol[b.op] + paren(b.r)
	}
}

// paren wraps additive children so that products render unambiguously.
func paren(e Expr) string {
	if inner, ok := e.(binary); ok && (inner.op == opAdd || inner.op == opSub) {
		return "(" + e.String() + ")"
	}
	s := e.String()
	if strings.HasPrefix(s, "-") {
		return "(" + s + ")"
	}
	return s
}

func (b binary) Equal(other Expr) bool {
	o, ok := other.(binary)
	return ok && b.op == o.op && b.l.Equal(o.l) && b.r.Equal(o.r)
}

func (b binary) collectVars(set map[string]struct{}) {
	b.l.collectVars(set)
	b.r.collectVars(set)
}

func (b binary) compile(slots map[string]int) (evalFn, bool) {
	lf, ok := b.l.compile(slots)
	if !ok {
		return nil, false
	}
	rf, ok := b.r.compile(slots)
	if !ok {
		return nil, false
	}
	switch b.op {
	case opAdd:
		return func(env []float64) float64 { return lf(env) + rf(env) }, true
	case opSub:
		return func(env []float64) float64 { return lf(env) - rf(env) }, true
	case opMul:
		return func(env []float64) float64 { return lf(env) * rf(env) }, true
	case opDiv:
		return func(env []float64) float64 { return lf(env) / rf(env) }, true
	case opPow:
		return func(env []float64) float64 { return math.Pow(lf(env), rf(env)) }, true
	case opMin:
		return func(env []float64) float64 { return math.Min(lf(env), rf(env)) }, true
	default:
		return func(env []float64) float64 { return math.Max(lf(env), rf(env)) }, true
	}
}

// ============================================================
// Unary functions
// ============================================================

type unOp int

const (
	opExp unOp = iota
	opLog
	opSqrt
	opAbs
)

var unOpName = map[unOp]string{
	opExp:  "exp",
	opLog:  "log",
	opSqrt: "sqrt",
	opAbs:  "abs",
}

type unary struct {
	op unOp
	x  Expr
}

// Exp returns e raised to the power x.
func Exp(x Expr) Expr { return unary{op: opExp, x: x} }

// Log returns the natural logarithm of x.
func Log(x Expr) Expr { return unary{op: opLog, x: x} }

// Sqrt returns the square root of x.
func Sqrt(x Expr) Expr { return unary{op: opSqrt, x: x} }

// Abs returns the absolute value of x.
func Abs(x Expr) Expr { return unary{op: opAbs, x: x} }

func (u unary) String() string {
	return unOpName[u.op] + "(" + u.x.String() + ")"
}

func (u unary) Equal(other Expr) bool {
	o, ok := other.(unary)
	return ok && u.op == o.op && u.x.Equal(o.x)
}

func (u unary) collectVars(set map[string]struct{}) { u.x.collectVars(set) }

func (u unary) compile(slots map[string]int) (evalFn, bool) {
	xf, ok := u.x.compile(slots)
	if !ok {
		return nil, false
	}
	switch u.op {
	case opExp:
		return func(env []float64) float64 { return math.Exp(xf(env)) }, true
	case opLog:
		return func(env []float64) float64 { return math.Log(xf(env)) }, true
	case opSqrt:
		return func(env []float64) float64 { return math.Sqrt(xf(env)) }, true
	default:
		return func(env []float64) float64 { return math.Abs(xf(env)) }, true
	}
}
