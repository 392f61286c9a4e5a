package dtmodel

import (
	"errors"
	"fmt"
	"log/slog"
)

// Model errors.
var (
	// ErrDuplicateIndex indicates two indices with the same name.
	ErrDuplicateIndex = errors.New("duplicate index")

	// ErrUnknownIndex indicates a name no index in the model carries.
	ErrUnknownIndex = errors.New("unknown index")
)

// Overrides maps index names to the shape parameters a scenario
// replaces, e.g. {"occupancy": {"scale": 2.0}}.
type Overrides map[string]map[string]float64

// Model exclusively owns a named, ordered collection of indices keyed
// by name. A model built by Variant additionally remembers which
// indices its overrides actually changed.
//
// A model and its indices are mutated by a single logical step at a
// time; nothing here is synchronized.
type Model struct {
	name    string
	indices map[string]Index
	order   []string
	changes []Index
	log     *slog.Logger
}

// ModelOption configures a model at construction.
type ModelOption func(*Model)

// WithLogger routes the model's structured logging. Defaults to
// slog.Default.
func WithLogger(log *slog.Logger) ModelOption {
	return func(m *Model) { m.log = log }
}

// NewModel builds a model owning the given indices. Index names must
// be unique; a duplicate fails with ErrDuplicateIndex.
func NewModel(name string, indices []Index, opts ...ModelOption) (*Model, error) {
	m := &Model{
		name:    name,
		indices: make(map[string]Index, len(indices)),
		order:   make([]string, 0, len(indices)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	for _, ix := range indices {
		if _, exists := m.indices[ix.Name()]; exists {
			return nil, fmt.Errorf("model %s: %w: %s", name, ErrDuplicateIndex, ix.Name())
		}
		m.indices[ix.Name()] = ix
		m.order = append(m.order, ix.Name())
	}
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Len returns the number of indices.
func (m *Model) Len() int { return len(m.order) }

// Index returns the named index.
func (m *Model) Index(name string) (Index, bool) {
	ix, ok := m.indices[name]
	return ix, ok
}

// Indices returns the indices in insertion order. The slice is a
// copy; the indices are not.
func (m *Model) Indices() []Index {
	out := make([]Index, len(m.order))
	for i, name := range m.order {
		out[i] = m.indices[name]
	}
	return out
}

// Groups returns the indices bucketed by group tag, preserving
// insertion order within each bucket. Ungrouped indices appear under
// the empty key. This is the shape a host dashboard consumes when
// laying out parameter controls.
func (m *Model) Groups() map[string][]Index {
	out := make(map[string][]Index)
	for _, name := range m.order {
		ix := m.indices[name]
		out[ix.Group()] = append(out[ix.Group()], ix)
	}
	return out
}

// Changes returns the indices whose parameters this model's overrides
// actually changed relative to the model it was derived from, in
// index order. Nil for a base model.
func (m *Model) Changes() []Index { return m.changes }

// Variant derives a named scenario: every index is cloned, then the
// override subset is applied to the clones, recording which indices
// actually changed. The receiver and its indices are never mutated.
// An override naming an unknown index fails with ErrUnknownIndex; an
// override naming a parameter its index does not own fails with
// ErrUnknownParam.
func (m *Model) Variant(name string, ov Overrides) (*Model, error) {
	for ixName := range ov {
		if _, ok := m.indices[ixName]; !ok {
			return nil, fmt.Errorf("model %s: %w: %s", m.name, ErrUnknownIndex, ixName)
		}
	}

	clone := &Model{
		name:    name,
		indices: make(map[string]Index, len(m.indices)),
		order:   append([]string(nil), m.order...),
		log:     m.log,
	}
	for _, ixName := range m.order {
		cloned, err := cloneIndex(m.indices[ixName])
		if err != nil {
			return nil, fmt.Errorf("model %s: clone %s: %w", m.name, ixName, err)
		}
		clone.indices[ixName] = cloned
	}

	for _, ixName := range clone.order {
		params, ok := ov[ixName]
		if !ok {
			continue
		}
		ix := clone.indices[ixName]
		changed := false
		for param, value := range params {
			ch, err := ix.SetParam(param, value)
			if err != nil {
				return nil, fmt.Errorf("model %s: %w", name, err)
			}
			if ch {
				m.log.Debug("scenario override applied",
					"scenario", name, "index", ixName, "param", param, "value", value)
			}
			changed = changed || ch
		}
		if changed {
			clone.changes = append(clone.changes, ix)
		}
	}

	m.log.Debug("scenario created",
		"base", m.name, "scenario", name, "changed", len(clone.changes))
	return clone, nil
}

// cloneIndex reconstructs a variant from its current parameters.
// Symbolic expressions are immutable, so a symbolic clone shares the
// expression and recompiles it.
func cloneIndex(ix Index) (Index, error) {
	switch v := ix.(type) {
	case *ConstIndex:
		return NewConstIndex(v.Name(), v.V(), WithGroup(v.Group())), nil
	case *UniformDistIndex:
		return NewUniformDistIndex(v.Name(), v.Loc(), v.Scale(), WithGroup(v.Group())), nil
	case *LognormDistIndex:
		return NewLognormDistIndex(v.Name(), v.Loc(), v.Scale(), v.S(), WithGroup(v.Group())), nil
	case *TriangDistIndex:
		return NewTriangDistIndex(v.Name(), v.Loc(), v.Scale(), v.C(), WithGroup(v.Group())), nil
	case *SymIndex:
		return NewSymIndex(v.Name(), v.SymValue(), v.ContextVars(), WithGroup(v.Group()))
	default:
		return nil, fmt.Errorf("cannot clone index of type %T", ix)
	}
}
