// Package dtmodel provides the declarative index abstraction of a
// demand/capacity simulation: named quantities that are constants,
// parametric probability distributions, or closed-form symbolic
// expressions over context variables.
//
// # Overview
//
// An Index is a named variable with an optional group tag and an
// evaluable value. Five variants refine how the value is produced:
//
//   - ConstIndex       - a single scalar
//   - UniformDistIndex - uniform distribution (loc, scale)
//   - LognormDistIndex - log-normal distribution (loc, scale, s)
//   - TriangDistIndex  - triangular distribution (loc, scale, c)
//   - SymIndex         - compiled from a symbolic expression over
//     ordered context variables
//
// Sub-packages:
//
//   - sym/  - symbolic expression kernel and compiler
//   - dist/ - parametric distributions over gonum
//
// # Mutation semantics
//
// Every shape-parameter setter is equality-gated: writing the current
// value is a no-op and reports false. A real change rebuilds the
// whole value from the complete current parameter set, constructing
// the replacement before assigning it, so a failed rebuild leaves the
// previous value in place.
//
//	occupancy := dtmodel.NewUniformDistIndex("occupancy", 0.0, 1.0)
//	occupancy.SetScale(2.0)  // rebuilt: uniform on [0, 2]
//	occupancy.SetScale(2.0)  // no-op, returns false
//
// # Symbolic indices
//
// A SymIndex keeps the algebraic form and its compiled numeric
// projection in sync: any write to the expression or to the
// context-variable order recompiles the value.
//
//	a, b := sym.V("a"), sym.V("b")
//	ix, err := dtmodel.NewSymIndex("load", sym.Add(a, sym.Mul(sym.C(2), b)), []*sym.Var{a, b})
//	ix.Value().Fn.At(3, 5) // 13
//
// The compiled function takes one positional argument per context
// variable and evaluates batches through Program.Across.
//
// # Models and scenarios
//
// A Model exclusively owns its indices, keyed by name. A scenario is
// a variant of a base model with a subset of parameters overridden:
//
//	scenario, err := base.Variant("high season", dtmodel.Overrides{
//	    "occupancy": {"scale": 2.0},
//	})
//	scenario.Changes() // the indices the overrides actually changed
//
// Variant clones every index, so the base model is never mutated.
// Model definitions for the non-symbolic variants can also be loaded
// from YAML with LoadModel.
//
// Nothing in this package is synchronized: one model belongs to one
// logical mutation step at a time, and the caller serializes access.
package dtmodel
