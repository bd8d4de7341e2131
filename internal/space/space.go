package space

import (
	"fmt"
	"math"
	"sort"
)

// Reserved trailing fields appended to every state. Stdev carries the
// dynamics model's predictive uncertainty (analysis only, never consulted
// for validity). NumDiverged counts consecutive classifier-rejected
// transitions along the tree branch ending at this state.
const (
	FieldStdev       = "stdev"
	FieldNumDiverged = "num_diverged"
)

// #region state

// State is a named mapping from field name to a fixed-width vector,
// e.g. {"rope": [x0 y0 ... xn yn], "stdev": [0], "num_diverged": [0]}.
type State map[string][]float64

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		cp := make([]float64, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// NumDiverged reads the divergence counter, 0 if the field is absent.
func (s State) NumDiverged() int {
	v, ok := s[FieldNumDiverged]
	if !ok || len(v) == 0 {
		return 0
	}
	return int(v[0])
}

// SetNumDiverged writes the divergence counter field.
func (s State) SetNumDiverged(n int) {
	s[FieldNumDiverged] = []float64{float64(n)}
}

// SetStdev writes the uncertainty field.
func (s State) SetStdev(v float64) {
	s[FieldStdev] = []float64{v}
}

// Stdev reads the uncertainty field, 0 if absent.
func (s State) Stdev() float64 {
	v, ok := s[FieldStdev]
	if !ok || len(v) == 0 {
		return 0
	}
	return v[0]
}

// #endregion state

// #region schema

// Field describes one named subspace: its width in the flat vector and
// its weight in the nearest-neighbor distance. Weight 0 fields (the
// reserved scalars) are carried through the codec but ignored by distance.
type Field struct {
	Name   string
	Width  int
	Weight float64
}

// Schema is the fixed field layout for one scenario, declared once and
// shared by the codec, the tree, and the samplers. The reserved stdev and
// num_diverged scalars are always the last two fields.
type Schema struct {
	fields []Field
	total  int
}

// NewSchema builds a schema from the scenario's planned fields and appends
// the two reserved scalar fields with weight 0.
func NewSchema(fields []Field) *Schema {
	all := make([]Field, 0, len(fields)+2)
	all = append(all, fields...)
	all = append(all,
		Field{Name: FieldStdev, Width: 1, Weight: 0},
		Field{Name: FieldNumDiverged, Width: 1, Weight: 0},
	)
	total := 0
	for _, f := range all {
		total += f.Width
	}
	return &Schema{fields: all, total: total}
}

// Fields returns the full field layout including the reserved scalars.
func (sc *Schema) Fields() []Field {
	return sc.fields
}

// TotalWidth is the length of the flat encoding.
func (sc *Schema) TotalWidth() int {
	return sc.total
}

// FieldNames returns all field names in layout order.
func (sc *Schema) FieldNames() []string {
	names := make([]string, len(sc.fields))
	for i, f := range sc.fields {
		names[i] = f.Name
	}
	return names
}

// #endregion schema

// #region codec

// Encode flattens a named state into a single vector in schema field
// order. Missing reserved fields encode as zeros; any other width mismatch
// is a programming-contract violation and panics.
func (sc *Schema) Encode(s State) []float64 {
	out := make([]float64, 0, sc.total)
	for _, f := range sc.fields {
		v, ok := s[f.Name]
		if !ok {
			if f.Name == FieldStdev || f.Name == FieldNumDiverged {
				out = append(out, 0)
				continue
			}
			panic(fmt.Sprintf("space: state missing field %q", f.Name))
		}
		if len(v) != f.Width {
			panic(fmt.Sprintf("space: field %q has width %d, schema declares %d", f.Name, len(v), f.Width))
		}
		out = append(out, v...)
	}
	return out
}

// Decode splits a flat vector back into a named state. The input length
// must match the schema's total width exactly; a mismatch is a
// programming-contract violation and panics.
func (sc *Schema) Decode(flat []float64) State {
	if len(flat) != sc.total {
		panic(fmt.Sprintf("space: flat vector has length %d, schema total width is %d", len(flat), sc.total))
	}
	s := make(State, len(sc.fields))
	off := 0
	for _, f := range sc.fields {
		v := make([]float64, f.Width)
		copy(v, flat[off:off+f.Width])
		s[f.Name] = v
		off += f.Width
	}
	return s
}

// #endregion codec

// #region distance

// Distance is the weighted Euclidean distance between two flat states,
// used for nearest-neighbor lookup during tree growth. Weight 0 fields
// do not contribute.
func (sc *Schema) Distance(a, b []float64) float64 {
	if len(a) != sc.total || len(b) != sc.total {
		panic(fmt.Sprintf("space: distance over vectors of length %d/%d, schema total width is %d", len(a), len(b), sc.total))
	}
	var sum float64
	off := 0
	for _, f := range sc.fields {
		if f.Weight > 0 {
			var d float64
			for i := off; i < off+f.Width; i++ {
				diff := a[i] - b[i]
				d += diff * diff
			}
			sum += f.Weight * d
		}
		off += f.Width
	}
	return math.Sqrt(sum)
}

// StateDistance is Distance over named states.
func (sc *Schema) StateDistance(a, b State) float64 {
	return sc.Distance(sc.Encode(a), sc.Encode(b))
}

// #endregion distance

// #region helpers

// SortedNames returns the state's own field names sorted, for stable
// logging and serialization of states that may carry extra fields.
func SortedNames(s State) []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// #endregion helpers
