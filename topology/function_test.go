package topology_test

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"

	. "github.com/toponet/toponet/topology"
	"github.com/toponet/toponet/types/tensor"
)

// buildStateful assembles a small recurrent net: the input is concatenated
// with the current value of variable "hidden", pooled, and the pooled value
// becomes the next "hidden".
func buildStateful(t *testing.T) *Topology {
	stateLayout := tensor.New(1, 16, 4, 4)
	topo := New()
	require.NoError(t, topo.Insert(NewInputLayout("input", tensor.New(1, 16, 4, 4), dtypes.Float32)))
	require.NoError(t, topo.Insert(NewReadValue("hidden.read", "hidden", stateLayout, dtypes.Float32)))
	require.NoError(t, topo.Insert(NewConcatenation("combined", AxisFeature, "input", "hidden.read")))
	require.NoError(t, topo.Insert(NewPooling("pooled", "combined", ModeAverage).Done()))
	require.NoError(t, topo.Insert(NewAssign("hidden.assign", "pooled", "hidden", stateLayout, dtypes.Float32)))
	return topo
}

func statefulVariables() map[VariableId]VariablePair {
	return map[VariableId]VariablePair{
		"hidden": {Read: "hidden.read", Assign: "hidden.assign"},
	}
}

func TestNewFunction(t *testing.T) {
	f, err := NewFunction("rnn_step", buildStateful(t),
		[]PrimitiveId{"input"}, []PrimitiveId{"pooled"}, []PrimitiveId{"hidden.assign"},
		statefulVariables())
	require.NoError(t, err)

	require.Equal(t, "rnn_step", f.Name())
	require.Equal(t, []PrimitiveId{"input"}, f.Parameters())
	require.Equal(t, []PrimitiveId{"pooled"}, f.Results())
	require.Equal(t, []PrimitiveId{"hidden.assign"}, f.Sinks())
	require.True(t, f.IsSink("hidden.assign"))
	require.False(t, f.IsSink("pooled"))
	require.Equal(t, []VariableId{"hidden"}, f.Variables())
	pair, found := f.Variable("hidden")
	require.True(t, found)
	require.Equal(t, VariablePair{Read: "hidden.read", Assign: "hidden.assign"}, pair)

	// The backing graph is finalized and ordered.
	require.Equal(t, 5, f.Graph().Len())
	require.Equal(t,
		[]PrimitiveId{"input", "hidden.read", "combined", "pooled", "hidden.assign"},
		f.Graph().TopologicalOrder())
}

func TestNewFunctionGeneratesName(t *testing.T) {
	f1, err := NewFunction("", buildStateful(t), nil, []PrimitiveId{"pooled"}, nil, nil)
	require.NoError(t, err)
	f2, err := NewFunction("", buildStateful(t), nil, []PrimitiveId{"pooled"}, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, f1.Name())
	require.NotEqual(t, f1.Name(), f2.Name())
}

func TestNewFunctionDanglingReference(t *testing.T) {
	_, err := NewFunction("f", buildStateful(t), nil, []PrimitiveId{"logits"}, nil, nil)
	require.ErrorIs(t, err, ErrDanglingReference)
	require.Contains(t, err.Error(), `"logits"`)

	_, err = NewFunction("f", buildStateful(t), []PrimitiveId{"missing"}, []PrimitiveId{"pooled"}, nil, nil)
	require.ErrorIs(t, err, ErrDanglingReference)

	_, err = NewFunction("f", buildStateful(t), nil, []PrimitiveId{"pooled"}, nil,
		map[VariableId]VariablePair{"hidden": {Read: "hidden.read", Assign: "missing"}})
	require.ErrorIs(t, err, ErrDanglingReference)
}

func TestNewFunctionVariableMismatch(t *testing.T) {
	// Read and assign disagree on the element type.
	topo := buildStateful(t)
	require.NoError(t, topo.Insert(
		NewAssign("hidden.assign16", "pooled", "hidden", tensor.New(1, 16, 4, 4), dtypes.Float16)))
	_, err := NewFunction("f", topo, nil, []PrimitiveId{"pooled"}, nil,
		map[VariableId]VariablePair{"hidden": {Read: "hidden.read", Assign: "hidden.assign16"}})
	require.ErrorIs(t, err, ErrVariableMismatch)

	// Read and assign disagree on the declared layout.
	topo = buildStateful(t)
	require.NoError(t, topo.Insert(
		NewAssign("hidden.assign8", "pooled", "hidden", tensor.New(1, 8, 4, 4), dtypes.Float32)))
	_, err = NewFunction("f", topo, nil, []PrimitiveId{"pooled"}, nil,
		map[VariableId]VariablePair{"hidden": {Read: "hidden.read", Assign: "hidden.assign8"}})
	require.ErrorIs(t, err, ErrVariableMismatch)

	// The pair must point at read_value/assign primitives.
	_, err = NewFunction("f", buildStateful(t), nil, []PrimitiveId{"pooled"}, nil,
		map[VariableId]VariablePair{"hidden": {Read: "input", Assign: "hidden.assign"}})
	require.ErrorIs(t, err, ErrVariableMismatch)

	// The pair must declare the variable it is registered under.
	_, err = NewFunction("f", buildStateful(t), nil, []PrimitiveId{"pooled"}, nil,
		map[VariableId]VariablePair{"cell": {Read: "hidden.read", Assign: "hidden.assign"}})
	require.ErrorIs(t, err, ErrVariableMismatch)
}

func TestNewFunctionPropagatesFinalizeErrors(t *testing.T) {
	topo := New()
	require.NoError(t, topo.Insert(NewReorder("a", "b", dtypes.Float32)))
	require.NoError(t, topo.Insert(NewReorder("b", "a", dtypes.Float32)))
	_, err := NewFunction("f", topo, nil, []PrimitiveId{"a"}, nil, nil)
	require.ErrorIs(t, err, ErrCycleDetected)
}
