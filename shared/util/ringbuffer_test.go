package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBufferCapacityRoundsUp(t *testing.T) {
	assert.Equal(t, 128, NewRingBuffer[float32](120).Cap())
	assert.Equal(t, 2, NewRingBuffer[int](1).Cap())
}

func TestRingBufferKeepsNewest(t *testing.T) {
	r := NewRingBuffer[int](4)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Values())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []int{1, 2}, r.Values())

	for i := 3; i <= 6; i++ {
		r.Push(i)
	}
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []int{3, 4, 5, 6}, r.Values())
}
