package dtmodel

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config errors.
var (
	// ErrUnknownKind indicates an index kind the loader does not
	// recognize.
	ErrUnknownKind = errors.New("unknown index kind")

	// ErrMissingParam indicates a kind-required parameter absent
	// from a definition.
	ErrMissingParam = errors.New("missing parameter")
)

// modelSpec is the YAML shape of a model definition:
//
//	name: base model
//	indices:
//	  - name: occupancy
//	    kind: uniform
//	    group: tourism
//	    params: {loc: 0.0, scale: 1.0}
//
// Kinds: const (v), uniform (loc, scale), lognorm (loc, scale, s),
// triang (loc, scale, c). Symbolic indices are built in code, not
// loaded: expressions have no text syntax here.
type modelSpec struct {
	Name    string      `yaml:"name"`
	Indices []indexSpec `yaml:"indices"`
}

type indexSpec struct {
	Name   string             `yaml:"name"`
	Kind   string             `yaml:"kind"`
	Group  string             `yaml:"group"`
	Params map[string]float64 `yaml:"params"`
}

// LoadModel reads a YAML model definition and builds the model.
func LoadModel(r io.Reader, opts ...ModelOption) (*Model, error) {
	var spec modelSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("model definition: %w", err)
	}

	indices := make([]Index, 0, len(spec.Indices))
	for _, is := range spec.Indices {
		ix, err := buildIndex(is)
		if err != nil {
			return nil, err
		}
		indices = append(indices, ix)
	}
	return NewModel(spec.Name, indices, opts...)
}

// LoadModelFile is LoadModel over a file path.
func LoadModelFile(path string, opts ...ModelOption) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadModel(f, opts...)
}

func buildIndex(is indexSpec) (Index, error) {
	need := func(names ...string) ([]float64, error) {
		vals := make([]float64, len(names))
		for i, n := range names {
			v, ok := is.Params[n]
			if !ok {
				return nil, fmt.Errorf("index %q: kind %q: %w: %s",
					is.Name, is.Kind, ErrMissingParam, n)
			}
			vals[i] = v
		}
		return vals, nil
	}

	switch is.Kind {
	case "const":
		p, err := need("v")
		if err != nil {
			return nil, err
		}
		return NewConstIndex(is.Name, p[0], WithGroup(is.Group)), nil
	case "uniform":
		p, err := need("loc", "scale")
		if err != nil {
			return nil, err
		}
		return NewUniformDistIndex(is.Name, p[0], p[1], WithGroup(is.Group)), nil
	case "lognorm":
		p, err := need("loc", "scale", "s")
		if err != nil {
			return nil, err
		}
		return NewLognormDistIndex(is.Name, p[0], p[1], p[2], WithGroup(is.Group)), nil
	case "triang":
		p, err := need("loc", "scale", "c")
		if err != nil {
			return nil, err
		}
		return NewTriangDistIndex(is.Name, p[0], p[1], p[2], WithGroup(is.Group)), nil
	default:
		return nil, fmt.Errorf("index %q: %w: %q", is.Name, ErrUnknownKind, is.Kind)
	}
}
