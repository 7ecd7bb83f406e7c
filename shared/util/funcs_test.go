package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 0, Wrap(4, 4))
	assert.Equal(t, 3, Wrap(-1, 4))
	assert.Equal(t, 0, Wrap(3, 0))
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-6)
}

func TestMatrixToRLKeepsTranslation(t *testing.T) {
	m := MatrixToRL(mgl32.Translate3D(1, 2, 3))
	assert.Equal(t, float32(1), m.M12)
	assert.Equal(t, float32(2), m.M13)
	assert.Equal(t, float32(3), m.M14)
	assert.Equal(t, float32(1), m.M15)
}

func TestColorToRL(t *testing.T) {
	c := ColorToRL(mgl32.Vec4{1, 0, 2, 0.5})
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(127), c.A)
}
