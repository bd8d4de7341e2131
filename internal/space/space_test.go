package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return NewSchema([]Field{
		{Name: "rope", Width: 6, Weight: 1},
	})
}

// #region schema-tests

func TestNewSchemaAppendsReservedFields(t *testing.T) {
	sc := testSchema()

	names := sc.FieldNames()
	require.Len(t, names, 3)
	assert.Equal(t, "rope", names[0])
	assert.Equal(t, FieldStdev, names[1])
	assert.Equal(t, FieldNumDiverged, names[2])
	assert.Equal(t, 8, sc.TotalWidth())

	for _, f := range sc.Fields() {
		if f.Name == FieldStdev || f.Name == FieldNumDiverged {
			assert.Zero(t, f.Weight)
			assert.Equal(t, 1, f.Width)
		}
	}
}

// #endregion schema-tests

// #region codec-tests

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sc := testSchema()
	s := State{"rope": []float64{1, 2, 3, 4, 5, 6}}
	s.SetStdev(0.3)
	s.SetNumDiverged(2)

	flat := sc.Encode(s)
	require.Len(t, flat, sc.TotalWidth())
	assert.Equal(t, s, sc.Decode(flat))
}

func TestEncodeMissingReservedFieldsAsZeros(t *testing.T) {
	sc := testSchema()
	flat := sc.Encode(State{"rope": []float64{1, 2, 3, 4, 5, 6}})

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 0, 0}, flat)
}

func TestEncodeWrongWidthPanics(t *testing.T) {
	sc := testSchema()
	assert.Panics(t, func() {
		sc.Encode(State{"rope": []float64{1, 2}})
	})
	assert.Panics(t, func() {
		sc.Encode(State{})
	})
}

func TestDecodeWrongWidthPanics(t *testing.T) {
	sc := testSchema()
	assert.Panics(t, func() {
		sc.Decode(make([]float64, sc.TotalWidth()-1))
	})
}

// #endregion codec-tests

// #region distance-tests

func TestDistanceIgnoresZeroWeightFields(t *testing.T) {
	sc := testSchema()

	a := State{"rope": []float64{0, 0, 0, 0, 0, 0}}
	a.SetStdev(0)
	a.SetNumDiverged(0)
	b := a.Clone()
	b.SetStdev(9)
	b.SetNumDiverged(5)

	assert.Zero(t, sc.StateDistance(a, b))

	b["rope"][0] = 3
	b["rope"][1] = 4
	assert.InDelta(t, 5.0, sc.StateDistance(a, b), 1e-12)
}

// #endregion distance-tests

// #region state-tests

func TestCloneIsDeep(t *testing.T) {
	s := State{"rope": []float64{1, 2}}
	cp := s.Clone()
	cp["rope"][0] = 99

	assert.Equal(t, 1.0, s["rope"][0])
}

func TestNumDivergedDefaultsToZero(t *testing.T) {
	s := State{"rope": []float64{1, 2}}
	assert.Zero(t, s.NumDiverged())
	assert.Zero(t, s.Stdev())

	s.SetNumDiverged(2)
	assert.Equal(t, 2, s.NumDiverged())
}

// #endregion state-tests
