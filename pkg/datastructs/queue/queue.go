package queue

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the back of the queue.
	// Returns true if successful, false if the queue is full.
	Enqueue(item T) bool

	// Dequeue removes and returns the item at the front of the queue.
	// Returns ErrEmptyQueue if there is nothing to remove.
	Dequeue() (T, error)

	// Peek returns the item the next Dequeue would return, without removing it.
	Peek() (T, error)

	// Size returns the number of items currently queued.
	Size() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// IsFull reports whether the queue has no free slots.
	IsFull() bool

	// Capacity returns the total capacity of the queue.
	Capacity() int
}
