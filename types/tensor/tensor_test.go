package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTensor(t *testing.T) {
	window := New(0, 0, 3, 3)
	y, x := window.Spatial()
	assert.Equal(t, int32(3), y)
	assert.Equal(t, int32(3), x)
	assert.False(t, window.IsZero())
	assert.True(t, Zero.IsZero())

	// Value semantics: comparable with ==.
	assert.True(t, window == New(0, 0, 3, 3))
	assert.Equal(t, "[b=0 f=0 y=3 x=3]", window.String())
}

func TestPadding(t *testing.T) {
	assert.True(t, Padding{}.IsZero())
	p := NewPadding(New(0, 0, 1, 1), Zero)
	assert.False(t, p.IsZero())
	assert.True(t, p == NewPadding(New(0, 0, 1, 1), Zero))
}
