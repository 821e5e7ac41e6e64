package topology_test

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	. "github.com/toponet/toponet/topology"
	"github.com/toponet/toponet/types/tensor"
)

func TestGobRoundTrip(t *testing.T) {
	topo := New()
	require.NoError(t, topo.Insert(NewInputLayout("input", tensor.New(1, 3, 224, 224), dtypes.Float32)))
	require.NoError(t, topo.Insert(NewInputLayout("indices", tensor.New(1, 3, 112, 112), dtypes.Float32)))
	require.NoError(t, topo.Insert(
		NewPooling("pool", "input", ModeMaxWithArgmax).
			Window(tensor.New(0, 0, 2, 2), tensor.New(1, 1, 2, 2)).
			InputOffset(tensor.New(0, 0, -1, -1)).
			WithArgmax("indices").
			WithOutputSize(tensor.New(1, 3, 112, 112), dtypes.Float16).
			Done()))
	require.NoError(t, topo.Insert(NewReverse("flip", "pool", AxisY, AxisX)))
	require.NoError(t, topo.Insert(NewConcatenation("concat", AxisFeature, "pool", "flip")))
	require.NoError(t, topo.Insert(NewReorder("convert", "concat", dtypes.Float32)))

	var buffer bytes.Buffer
	must.M(topo.GobSerialize(gob.NewEncoder(&buffer)))
	decoded := must.M1(GobDeserializeTopology(gob.NewDecoder(&buffer)))

	require.Equal(t, topo.Ids(), decoded.Ids())

	// Per-primitive configuration survives.
	pool, found := decoded.Get("pool")
	require.True(t, found)
	poolPrim, ok := pool.(*Pooling)
	require.True(t, ok)
	require.Equal(t, ModeMaxWithArgmax, poolPrim.Mode)
	require.Equal(t, PrimitiveId("indices"), poolPrim.Argmax)
	require.Equal(t, tensor.New(0, 0, 2, 2), poolPrim.Size)
	require.Equal(t, tensor.New(0, 0, -1, -1), poolPrim.InputOffset)
	require.True(t, poolPrim.WithOutputSize)
	require.Equal(t, dtypes.Float16, poolPrim.OutputDataType())

	flip, found := decoded.Get("flip")
	require.True(t, found)
	require.Equal(t, []Axis{AxisY, AxisX}, flip.(*Reverse).Axes)

	// Both sides finalize into the same graph: same edges, same order.
	original := must.M1(topo.Finalize())
	rebuilt := must.M1(decoded.Finalize())
	require.Equal(t, original.TopologicalOrder(), rebuilt.TopologicalOrder())
	for _, id := range original.Ids() {
		require.Equal(t, original.Dependencies(id), rebuilt.Dependencies(id))
	}
}

func TestRegisterPrimitive(t *testing.T) {
	require.Panics(t, func() { RegisterPrimitive("", func() Primitive { return &Reorder{} }) })
	require.Panics(t, func() { RegisterPrimitive(PoolingTag, nil) })
	require.Panics(t, func() { RegisterPrimitive(PoolingTag, func() Primitive { return &Pooling{} }) })
}

func TestGobUnknownTag(t *testing.T) {
	var buffer bytes.Buffer
	encoder := gob.NewEncoder(&buffer)
	must.M(encoder.Encode(1))
	must.M(encoder.Encode("warp_drive"))
	_, err := GobDeserializeTopology(gob.NewDecoder(&buffer))
	require.ErrorContains(t, err, "warp_drive")
}
