package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFOOrder(t *testing.T) {
	q := NewRingQueue[int](4)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))

	front, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	for want := 1; want <= 3; want++ {
		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestRingQueueRejectsWhenFull(t *testing.T) {
	q := NewRingQueue[string](2)
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.True(t, q.IsFull())

	err := q.Enqueue("c")
	require.Error(t, err)
	assert.Equal(t, 2, q.Len())
}

func TestRingQueueDequeueEmptyFails(t *testing.T) {
	q := NewRingQueue[int](2)
	_, err := q.Dequeue()
	require.Error(t, err)
	_, err = q.Peek()
	require.Error(t, err)
}

func TestRingQueueWrapsAround(t *testing.T) {
	q := NewRingQueue[int](2)
	require.NoError(t, q.Enqueue(1))
	_, err := q.Dequeue()
	require.NoError(t, err)

	// Writes past the end of the backing slice must wrap.
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))

	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	got, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
