package dist

import (
	"math"
	"testing"
)

func TestUniform(t *testing.T) {
	d := NewUniform(1.0, 2.0) // [1, 3]

	if got := d.Mean(); got != 2.0 {
		t.Errorf("Mean = %g, want 2", got)
	}
	if got := d.CDF(2.0); got != 0.5 {
		t.Errorf("CDF(2) = %g, want 0.5", got)
	}
	if got := d.CDF(0.0); got != 0.0 {
		t.Errorf("CDF(0) = %g, want 0", got)
	}
	if got := d.CDF(4.0); got != 1.0 {
		t.Errorf("CDF(4) = %g, want 1", got)
	}
	if got := d.Prob(2.0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Prob(2) = %g, want 0.5", got)
	}

	p := d.Params()
	if p.Loc != 1.0 || p.Scale != 2.0 || p.Shape != 0 {
		t.Errorf("Params = %+v, want {1 2 0}", p)
	}

	for i := 0; i < 1000; i++ {
		x := d.Rand()
		if x < 1.0 || x > 3.0 {
			t.Fatalf("sample %g outside support [1, 3]", x)
		}
	}
}

func TestLognorm(t *testing.T) {
	d := NewLognorm(2.0, 3.0, 0.5)

	// Median of LogNormal(0, s) is 1, so the shifted median is loc+scale.
	if got := d.CDF(2.0 + 3.0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("CDF(loc+scale) = %g, want 0.5", got)
	}

	// Mean = loc + scale·exp(s²/2).
	want := 2.0 + 3.0*math.Exp(0.5*0.5/2)
	if got := d.Mean(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Mean = %g, want %g", got, want)
	}

	p := d.Params()
	if p.Loc != 2.0 || p.Scale != 3.0 || p.Shape != 0.5 {
		t.Errorf("Params = %+v, want {2 3 0.5}", p)
	}

	// Below the support both CDF and density are exactly 0, not NaN.
	if got := d.CDF(1.0); got != 0.0 {
		t.Errorf("CDF below loc = %g, want 0", got)
	}
	if got := d.Prob(1.0); got != 0.0 {
		t.Errorf("Prob below loc = %g, want 0", got)
	}
	if got := d.CDF(2.0); got != 0.0 {
		t.Errorf("CDF(loc) = %g, want 0", got)
	}

	// Support starts at loc for positive scale.
	for i := 0; i < 1000; i++ {
		if x := d.Rand(); x < 2.0 {
			t.Fatalf("sample %g below loc", x)
		}
	}
}

func TestLognorm_DensityIntegratesShift(t *testing.T) {
	base := NewLognorm(0, 1, 0.5)
	shifted := NewLognorm(10, 1, 0.5)

	// Shifting by loc translates the density.
	if got, want := shifted.Prob(11), base.Prob(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("shifted Prob(11) = %g, want %g", got, want)
	}

	// Scaling divides the density by the scale factor.
	scaled := NewLognorm(0, 2, 0.5)
	if got, want := scaled.Prob(2), base.Prob(1)/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("scaled Prob(2) = %g, want %g", got, want)
	}
}

func TestTriang(t *testing.T) {
	d := NewTriang(0.0, 2.0, 0.5) // support [0, 2], mode 1

	if got := d.Mean(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Mean = %g, want 1", got)
	}
	if got := d.CDF(1.0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("CDF(mode) = %g, want 0.5", got)
	}

	p := d.Params()
	if p.Loc != 0.0 || p.Scale != 2.0 || p.Shape != 0.5 {
		t.Errorf("Params = %+v, want {0 2 0.5}", p)
	}

	for i := 0; i < 1000; i++ {
		x := d.Rand()
		if x < 0.0 || x > 2.0 {
			t.Fatalf("sample %g outside support [0, 2]", x)
		}
	}
}

func TestTriang_DegenerateSupportPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero scale")
		}
	}()
	NewTriang(1.0, 0.0, 0.5)
}
