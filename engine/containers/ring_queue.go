package containers

import (
	"errors"
	"sync"
)

// RingQueue is a fixed-capacity FIFO. It is safe for concurrent enqueue so
// that completions produced on other goroutines can be posted to the
// single-threaded frame loop, which drains it at the top of each tick.
type RingQueue[T any] struct {
	mu         sync.Mutex
	data       []T
	size       int
	readIndex  int
	writeIndex int
	count      int
}

// Create a new RingQueue with the given capacity.
func NewRingQueue[T any](size int) *RingQueue[T] {
	return &RingQueue[T]{
		data: make([]T, size),
		size: size,
	}
}

// Enqueue adds an element to the queue.
func (rq *RingQueue[T]) Enqueue(value T) error {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	if rq.count == rq.size {
		return errors.New("queue is full")
	}
	rq.data[rq.writeIndex] = value
	rq.writeIndex = (rq.writeIndex + 1) % rq.size
	rq.count++
	return nil
}

// Dequeue removes and returns the front element in the queue.
func (rq *RingQueue[T]) Dequeue() (T, error) {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	var zero T
	if rq.count == 0 {
		return zero, errors.New("queue is empty")
	}
	value := rq.data[rq.readIndex]
	rq.data[rq.readIndex] = zero
	rq.readIndex = (rq.readIndex + 1) % rq.size
	rq.count--
	return value, nil
}

// Peek returns the front element without removing it.
func (rq *RingQueue[T]) Peek() (T, error) {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	var zero T
	if rq.count == 0 {
		return zero, errors.New("queue is empty")
	}
	return rq.data[rq.readIndex], nil
}

// IsEmpty checks if the queue is empty.
func (rq *RingQueue[T]) IsEmpty() bool {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return rq.count == 0
}

// IsFull checks if the queue is full.
func (rq *RingQueue[T]) IsFull() bool {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return rq.count == rq.size
}

// Len returns the number of queued elements.
func (rq *RingQueue[T]) Len() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return rq.count
}
