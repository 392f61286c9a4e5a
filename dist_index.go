package dtmodel

import (
	"fmt"

	"github.com/tn-aixpa/dt-model/dist"
)

// The three distribution-backed variants below share one discipline:
// every setter compares against the stored parameter and returns
// false without touching anything on an equal write; on a real change
// it stores the parameter and rebuilds the whole distribution from
// the complete current parameter set. The new distribution is
// constructed before the value is assigned, so a constructor panic
// leaves the previous value in place.
//
// Setters do no range checking. An invalid combination (e.g. a
// non-positive triangular scale) surfaces from the distribution
// constructor, not here.

// ============================================================
// UniformDistIndex
// ============================================================

// UniformDistIndex is an index distributed uniformly on
// [loc, loc+scale].
type UniformDistIndex struct {
	base
	loc, scale float64
}

// NewUniformDistIndex returns a uniform-distribution index.
func NewUniformDistIndex(name string, loc, scale float64, opts ...Option) *UniformDistIndex {
	ix := &UniformDistIndex{base: base{name: name}, loc: loc, scale: scale}
	for _, opt := range opts {
		opt(&ix.base)
	}
	ix.rebuild()
	return ix
}

func (ix *UniformDistIndex) rebuild() {
	d := dist.NewUniform(ix.loc, ix.scale)
	ix.value = Value{Kind: KindDistribution, Dist: d}
}

// Loc returns the location parameter.
func (ix *UniformDistIndex) Loc() float64 { return ix.loc }

// SetLoc writes the location, reporting whether it changed.
func (ix *UniformDistIndex) SetLoc(loc float64) bool {
	if ix.loc == loc {
		return false
	}
	ix.loc = loc
	ix.rebuild()
	return true
}

// Scale returns the scale parameter.
func (ix *UniformDistIndex) Scale() float64 { return ix.scale }

// SetScale writes the scale, reporting whether it changed.
func (ix *UniformDistIndex) SetScale(scale float64) bool {
	if ix.scale == scale {
		return false
	}
	ix.scale = scale
	ix.rebuild()
	return true
}

func (ix *UniformDistIndex) Params() map[string]float64 {
	return map[string]float64{"loc": ix.loc, "scale": ix.scale}
}

func (ix *UniformDistIndex) SetParam(name string, value float64) (bool, error) {
	switch name {
	case "loc":
		return ix.SetLoc(value), nil
	case "scale":
		return ix.SetScale(value), nil
	default:
		return false, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, ix.name, name)
	}
}

func (ix *UniformDistIndex) String() string {
	return fmt.Sprintf("uniform_dist_idx(%g, %g)", ix.loc, ix.scale)
}

// ============================================================
// LognormDistIndex
// ============================================================

// LognormDistIndex is an index distributed as loc + scale·X with
// log X ~ Normal(0, s²).
type LognormDistIndex struct {
	base
	loc, scale, s float64
}

// NewLognormDistIndex returns a log-normal-distribution index.
func NewLognormDistIndex(name string, loc, scale, s float64, opts ...Option) *LognormDistIndex {
	ix := &LognormDistIndex{base: base{name: name}, loc: loc, scale: scale, s: s}
	for _, opt := range opts {
		opt(&ix.base)
	}
	ix.rebuild()
	return ix
}

func (ix *LognormDistIndex) rebuild() {
	d := dist.NewLognorm(ix.loc, ix.scale, ix.s)
	ix.value = Value{Kind: KindDistribution, Dist: d}
}

// Loc returns the location parameter.
func (ix *LognormDistIndex) Loc() float64 { return ix.loc }

// SetLoc writes the location, reporting whether it changed.
func (ix *LognormDistIndex) SetLoc(loc float64) bool {
	if ix.loc == loc {
		return false
	}
	ix.loc = loc
	ix.rebuild()
	return true
}

// Scale returns the scale parameter.
func (ix *LognormDistIndex) Scale() float64 { return ix.scale }

// SetScale writes the scale, reporting whether it changed.
func (ix *LognormDistIndex) SetScale(scale float64) bool {
	if ix.scale == scale {
		return false
	}
	ix.scale = scale
	ix.rebuild()
	return true
}

// S returns the log-space standard deviation.
func (ix *LognormDistIndex) S() float64 { return ix.s }

// SetS writes the log-space standard deviation, reporting whether it
// changed.
func (ix *LognormDistIndex) SetS(s float64) bool {
	if ix.s == s {
		return false
	}
	ix.s = s
	ix.rebuild()
	return true
}

func (ix *LognormDistIndex) Params() map[string]float64 {
	return map[string]float64{"loc": ix.loc, "scale": ix.scale, "s": ix.s}
}

func (ix *LognormDistIndex) SetParam(name string, value float64) (bool, error) {
	switch name {
	case "loc":
		return ix.SetLoc(value), nil
	case "scale":
		return ix.SetScale(value), nil
	case "s":
		return ix.SetS(value), nil
	default:
		return false, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, ix.name, name)
	}
}

func (ix *LognormDistIndex) String() string {
	return fmt.Sprintf("lognorm_dist_idx(%g, %g, %g)", ix.loc, ix.scale, ix.s)
}

// ============================================================
// TriangDistIndex
// ============================================================

// TriangDistIndex is an index distributed triangularly on
// [loc, loc+scale] with the mode at loc + c·scale.
type TriangDistIndex struct {
	base
	loc, scale, c float64
}

// NewTriangDistIndex returns a triangular-distribution index.
// Panics on a degenerate support (scale ≤ 0 or c outside [0, 1]),
// propagating the distribution constructor's check.
func NewTriangDistIndex(name string, loc, scale, c float64, opts ...Option) *TriangDistIndex {
	ix := &TriangDistIndex{base: base{name: name}, loc: loc, scale: scale, c: c}
	for _, opt := range opts {
		opt(&ix.base)
	}
	ix.rebuild()
	return ix
}

func (ix *TriangDistIndex) rebuild() {
	d := dist.NewTriang(ix.loc, ix.scale, ix.c)
	ix.value = Value{Kind: KindDistribution, Dist: d}
}

// Loc returns the location parameter.
func (ix *TriangDistIndex) Loc() float64 { return ix.loc }

// SetLoc writes the location, reporting whether it changed.
func (ix *TriangDistIndex) SetLoc(loc float64) bool {
	if ix.loc == loc {
		return false
	}
	ix.loc = loc
	ix.rebuild()
	return true
}

// Scale returns the scale parameter.
func (ix *TriangDistIndex) Scale() float64 { return ix.scale }

// SetScale writes the scale, reporting whether it changed.
func (ix *TriangDistIndex) SetScale(scale float64) bool {
	if ix.scale == scale {
		return false
	}
	ix.scale = scale
	ix.rebuild()
	return true
}

// C returns the mode position as a fraction of the support.
func (ix *TriangDistIndex) C() float64 { return ix.c }

// SetC writes the mode position, reporting whether it changed.
func (ix *TriangDistIndex) SetC(c float64) bool {
	if ix.c == c {
		return false
	}
	ix.c = c
	ix.rebuild()
	return true
}

func (ix *TriangDistIndex) Params() map[string]float64 {
	return map[string]float64{"loc": ix.loc, "scale": ix.scale, "c": ix.c}
}

func (ix *TriangDistIndex) SetParam(name string, value float64) (bool, error) {
	switch name {
	case "loc":
		return ix.SetLoc(value), nil
	case "scale":
		return ix.SetScale(value), nil
	case "c":
		return ix.SetC(value), nil
	default:
		return false, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, ix.name, name)
	}
}

func (ix *TriangDistIndex) String() string {
	return fmt.Sprintf("triang_dist_idx(%g, %g, %g)", ix.loc, ix.scale, ix.c)
}
