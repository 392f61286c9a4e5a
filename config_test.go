package dtmodel

import (
	"errors"
	"strings"
	"testing"
)

const testModelYAML = `
name: base model
indices:
  - name: occupancy
    kind: uniform
    group: demand
    params: {loc: 0.0, scale: 1.0}
  - name: stay
    kind: lognorm
    group: demand
    params: {loc: 0.0, scale: 3.0, s: 0.5}
  - name: season
    kind: triang
    params: {loc: 0.0, scale: 1.0, c: 0.6}
  - name: beds
    kind: const
    group: capacity
    params: {v: 1200}
`

func TestLoadModel(t *testing.T) {
	m, err := LoadModel(strings.NewReader(testModelYAML))
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}

	if m.Name() != "base model" {
		t.Errorf("Name = %q, want base model", m.Name())
	}
	if m.Len() != 4 {
		t.Fatalf("Len = %d, want 4", m.Len())
	}

	occ, ok := m.Index("occupancy")
	if !ok {
		t.Fatal("occupancy missing")
	}
	if occ.Group() != "demand" {
		t.Errorf("occupancy group = %q, want demand", occ.Group())
	}
	if p := occ.Value().Dist.Params(); p.Loc != 0.0 || p.Scale != 1.0 {
		t.Errorf("occupancy params = %+v, want loc=0 scale=1", p)
	}

	stay, _ := m.Index("stay")
	if _, ok := stay.(*LognormDistIndex); !ok {
		t.Errorf("stay is %T, want *LognormDistIndex", stay)
	}
	season, _ := m.Index("season")
	if season.Group() != "" {
		t.Errorf("season group = %q, want empty", season.Group())
	}
	beds, _ := m.Index("beds")
	if beds.(*ConstIndex).V() != 1200 {
		t.Errorf("beds = %g, want 1200", beds.(*ConstIndex).V())
	}
}

func TestLoadModel_UnknownKind(t *testing.T) {
	_, err := LoadModel(strings.NewReader(`
name: m
indices:
  - name: x
    kind: beta
    params: {a: 1, b: 2}
`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", err)
	}
}

func TestLoadModel_MissingParam(t *testing.T) {
	_, err := LoadModel(strings.NewReader(`
name: m
indices:
  - name: x
    kind: lognorm
    params: {loc: 0, scale: 1}
`))
	if !errors.Is(err, ErrMissingParam) {
		t.Errorf("error = %v, want ErrMissingParam", err)
	}
	if err == nil || !strings.Contains(err.Error(), `"s"`) && !strings.Contains(err.Error(), ": s") {
		t.Errorf("error should name the missing parameter, got %v", err)
	}
}

func TestLoadModel_UnknownField(t *testing.T) {
	_, err := LoadModel(strings.NewReader(`
name: m
typo: true
indices: []
`))
	if err == nil {
		t.Error("unknown top-level fields should be rejected")
	}
}

func TestLoadModel_DuplicateIndex(t *testing.T) {
	_, err := LoadModel(strings.NewReader(`
name: m
indices:
  - name: x
    kind: const
    params: {v: 1}
  - name: x
    kind: const
    params: {v: 2}
`))
	if !errors.Is(err, ErrDuplicateIndex) {
		t.Errorf("error = %v, want ErrDuplicateIndex", err)
	}
}
