package queue

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ Queue[int] = (*Ring[int])(nil)

// DefaultSeparator joins slots in String.
const DefaultSeparator = " , "

// slot holds one physical position of the ring.
// A vacant slot keeps the zero value of T so it retains no references.
type slot[T any] struct {
	data T
	used bool
}

// Ring is a fixed-capacity FIFO queue over a circular backing slice.
//
// head counts dequeues and tail counts enqueues. Both advance by one and wrap
// at 2*capacity, so tail-head (mod 2*capacity) is the number of live items
// and stays unambiguous for both the empty (0) and the full (capacity) case.
// A slot's physical index is the cursor modulo capacity.
//
// Ring is NOT thread-safe.
type Ring[T any] struct {
	slots    []slot[T]
	capacity uint64
	head     uint64 // next slot to dequeue, in [0, 2*capacity)
	tail     uint64 // next slot to enqueue, in [0, 2*capacity)

	fill    T
	hasFill bool

	name   string
	logger *zap.Logger
}

// NewRing creates a queue holding at most capacity items.
// All slots start vacant. Returns ErrInvalidCapacity if capacity <= 0.
func NewRing[T any](capacity int, opts ...Option[T]) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	r := &Ring[T]{
		slots:    make([]slot[T], capacity),
		capacity: uint64(capacity),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Ring[T]) idx(pos uint64) uint64 {
	if pos >= r.capacity {
		return pos - r.capacity
	}
	return pos
}

func (r *Ring[T]) next(pos uint64) uint64 {
	pos++
	if pos == 2*r.capacity {
		return 0
	}
	return pos
}

// Enqueue adds an item. Returns false if the queue is full.
func (r *Ring[T]) Enqueue(item T) bool {
	if r.IsFull() {
		if ce := r.logger.Check(zap.DebugLevel, "queue full, enqueue rejected"); ce != nil {
			ce.Write(zap.String("queue", r.name), zap.Uint64("capacity", r.capacity))
		}
		return false
	}

	r.slots[r.idx(r.tail)] = slot[T]{data: item, used: true}
	r.tail = r.next(r.tail)
	return true
}

// Dequeue removes and returns the oldest item.
// Returns ErrEmptyQueue and leaves the queue untouched if it is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	if r.IsEmpty() {
		r.logUnderflow("dequeue")
		var zero T
		return zero, ErrEmptyQueue
	}

	i := r.idx(r.head)
	item := r.slots[i].data
	r.slots[i] = slot[T]{}
	r.head = r.next(r.head)
	return item, nil
}

// Peek returns the oldest item without removing it.
func (r *Ring[T]) Peek() (T, error) {
	if r.IsEmpty() {
		r.logUnderflow("peek")
		var zero T
		return zero, ErrEmptyQueue
	}
	return r.slots[r.idx(r.head)].data, nil
}

func (r *Ring[T]) logUnderflow(op string) {
	if ce := r.logger.Check(zap.DebugLevel, "queue empty"); ce != nil {
		ce.Write(zap.String("queue", r.name), zap.String("op", op))
	}
}

// EnqueueBatch adds items until the queue fills. Returns count of items enqueued.
func (r *Ring[T]) EnqueueBatch(items []T) int {
	count := 0
	for _, item := range items {
		if !r.Enqueue(item) {
			break
		}
		count++
	}
	return count
}

// DequeueBatch removes items into out until the queue empties. Returns count dequeued.
func (r *Ring[T]) DequeueBatch(out []T) int {
	count := 0
	for i := range out {
		if r.IsEmpty() {
			break
		}
		out[i], _ = r.Dequeue()
		count++
	}
	return count
}

// Size returns the number of queued items, always in [0, Capacity()].
func (r *Ring[T]) Size() int {
	if r.tail >= r.head {
		return int(r.tail - r.head)
	}
	return int(r.tail + 2*r.capacity - r.head)
}

// IsEmpty reports whether the queue holds no items.
func (r *Ring[T]) IsEmpty() bool { return r.head == r.tail }

// IsFull reports whether every slot is live.
func (r *Ring[T]) IsFull() bool { return r.Size() == int(r.capacity) }

// Capacity returns the maximum queue size.
func (r *Ring[T]) Capacity() int { return int(r.capacity) }

// Clear vacates every slot and resets the cursors.
func (r *Ring[T]) Clear() {
	clear(r.slots)
	r.head, r.tail = 0, 0
}

// Slot returns the content of physical slot i.
// A vacant slot yields the configured default and false.
// It panics if i is out of range.
func (r *Ring[T]) Slot(i int) (T, bool) {
	s := r.slots[i]
	if !s.used {
		return r.fill, false
	}
	return s.data, true
}

// Render formats every physical slot in storage order, not FIFO order,
// joined by sep and wrapped in brackets. Vacant slots render as the
// configured default, or as the empty string when there is none.
// Nil values render as the empty string.
func (r *Ring[T]) Render(sep string) string {
	vacant := ""
	if r.hasFill {
		vacant = formatSlot(r.fill)
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range r.slots {
		if i > 0 {
			sb.WriteString(sep)
		}
		if s.used {
			sb.WriteString(formatSlot(s.data))
		} else {
			sb.WriteString(vacant)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatSlot renders v with fmt, except nil which renders as "".
func formatSlot[T any](v T) string {
	if isNil(v) {
		return ""
	}
	return fmt.Sprint(v)
}

func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// String implements fmt.Stringer using DefaultSeparator.
func (r *Ring[T]) String() string {
	return r.Render(DefaultSeparator)
}
