// Package dist provides the parametric distributions used by index
// variables, parameterized by location, scale, and one
// distribution-specific shape value.
//
// The numeric machinery is gonum's distuv package; this package only
// fixes the loc/scale parameterization so that a distribution can be
// rebuilt verbatim from the parameters its index carries:
//
//   - Uniform(loc, scale):   uniform on [loc, loc+scale]
//   - Lognorm(loc, scale, s): loc + scale·LogNormal(0, s)
//   - Triang(loc, scale, c): triangular on [loc, loc+scale] with the
//     mode at loc + c·scale, 0 ≤ c ≤ 1
//
// Constructors do not validate ranges beyond what gonum enforces;
// NewTriang panics on degenerate support, as gonum's NewTriangle does.
package dist

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Params are the constructor arguments of a distribution, retained
// verbatim so callers can compare rebuilt distributions
// parameter-for-parameter.
type Params struct {
	Loc   float64
	Scale float64

	// Shape is the distribution-specific parameter: s for Lognorm,
	// c for Triang. Zero and unused for Uniform.
	Shape float64
}

// Distribution is a parametric probability distribution. The method
// set is the minimal contract the model consumes; sampling strategy
// and richer statistics stay inside gonum.
type Distribution interface {
	// Rand draws one sample.
	Rand() float64

	// CDF returns the cumulative distribution function at x.
	CDF(x float64) float64

	// Prob returns the probability density at x.
	Prob(x float64) float64

	// Mean returns the distribution mean.
	Mean() float64

	// Params returns the constructor arguments.
	Params() Params
}

// ============================================================
// Uniform
// ============================================================

type uniform struct {
	loc, scale float64
	d          distuv.Uniform
}

// NewUniform returns the uniform distribution on [loc, loc+scale].
func NewUniform(loc, scale float64) Distribution {
	return &uniform{
		loc:   loc,
		scale: scale,
		d:     distuv.Uniform{Min: loc, Max: loc + scale},
	}
}

func (u *uniform) Rand() float64          { return u.d.Rand() }
func (u *uniform) CDF(x float64) float64  { return u.d.CDF(x) }
func (u *uniform) Prob(x float64) float64 { return u.d.Prob(x) }
func (u *uniform) Mean() float64          { return u.d.Mean() }
func (u *uniform) Params() Params         { return Params{Loc: u.loc, Scale: u.scale} }

func (u *uniform) String() string {
	return fmt.Sprintf("uniform(loc=%g, scale=%g)", u.loc, u.scale)
}

// ============================================================
// Lognorm
// ============================================================

type lognorm struct {
	loc, scale, s float64
	d             distuv.LogNormal
}

// NewLognorm returns loc + scale·X where log X ~ Normal(0, s²).
// The (loc, scale, s) parameterization matches the shape parameters
// the lognormal index carries.
func NewLognorm(loc, scale, s float64) Distribution {
	return &lognorm{
		loc:   loc,
		scale: scale,
		s:     s,
		d:     distuv.LogNormal{Mu: 0, Sigma: s},
	}
}

func (l *lognorm) Rand() float64 { return l.loc + l.scale*l.d.Rand() }

// The support starts at loc: below it the CDF is 0 and the density is
// 0, rather than whatever log of a negative argument would produce.
func (l *lognorm) CDF(x float64) float64 {
	if x <= l.loc {
		return 0
	}
	return l.d.CDF((x - l.loc) / l.scale)
}

func (l *lognorm) Prob(x float64) float64 {
	if x <= l.loc {
		return 0
	}
	return l.d.Prob((x-l.loc)/l.scale) / l.scale
}

func (l *lognorm) Mean() float64 { return l.loc + l.scale*l.d.Mean() }

func (l *lognorm) Params() Params { return Params{Loc: l.loc, Scale: l.scale, Shape: l.s} }

func (l *lognorm) String() string {
	return fmt.Sprintf("lognorm(loc=%g, scale=%g, s=%g)", l.loc, l.scale, l.s)
}

// ============================================================
// Triang
// ============================================================

type triang struct {
	loc, scale, c float64
	d             distuv.Triangle
}

// NewTriang returns the triangular distribution on [loc, loc+scale]
// with the mode at loc + c·scale. Panics if the support is degenerate
// (scale ≤ 0 or c outside [0, 1]), propagating gonum's constructor
// check.
func NewTriang(loc, scale, c float64) Distribution {
	return &triang{
		loc:   loc,
		scale: scale,
		c:     c,
		d:     distuv.NewTriangle(loc, loc+scale, loc+c*scale, nil),
	}
}

func (t *triang) Rand() float64          { return t.d.Rand() }
func (t *triang) CDF(x float64) float64  { return t.d.CDF(x) }
func (t *triang) Prob(x float64) float64 { return t.d.Prob(x) }
func (t *triang) Mean() float64          { return t.d.Mean() }
func (t *triang) Params() Params         { return Params{Loc: t.loc, Scale: t.scale, Shape: t.c} }

func (t *triang) String() string {
	return fmt.Sprintf("triang(loc=%g, scale=%g, c=%g)", t.loc, t.scale, t.c)
}
