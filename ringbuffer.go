package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// RingBuffer is a double-ended queue backed by a circular buffer,
// where pushing and popping at either end runs in amortized constant time.
// A bounded buffer never holds more values than its configured capacity;
// the fate of a push once the buffer is full depends on the configured OverflowPolicy.
// The zero value is an empty unbounded buffer ready for use.
type RingBuffer[T any] struct {
	buf      []T
	head     int
	size     int
	capacity int
	overflow OverflowPolicy
}

func NewRingBuffer[T any](opts ...RingBufferOption) *RingBuffer[T] {
	c := option.ToConfig(opts)
	return &RingBuffer[T]{
		capacity: max(c.Capacity, 0),
		overflow: zerokit.Coalesce(c.Overflow, EvictOldest),
	}
}

type RingBufferOption option.Option[RingBufferConfig]

type RingBufferConfig struct {
	// Capacity limits how many values the buffer can hold at once.
	// Zero means the buffer grows without bound.
	Capacity int
	// Overflow decides the fate of a push once a bounded buffer is full.
	// The default policy is EvictOldest.
	Overflow OverflowPolicy
}

var _ RingBufferOption = RingBufferConfig{}

func (c RingBufferConfig) Configure(oth *RingBufferConfig) {
	oth.Capacity = zerokit.Coalesce(c.Capacity, oth.Capacity)
	oth.Overflow = zerokit.Coalesce(c.Overflow, oth.Overflow)
}

// RingBufferCapacity limits the buffer to hold at most n values.
func RingBufferCapacity(n int) RingBufferOption {
	return option.Func[RingBufferConfig](func(c *RingBufferConfig) {
		c.Capacity = n
	})
}

// OverflowPolicy decides what happens to a push once a bounded RingBuffer is full.
type OverflowPolicy int

const (
	// EvictOldest makes room for the pushed value
	// by silently discarding the value at the opposite end of the buffer.
	EvictOldest OverflowPolicy = iota + 1
	// RejectNew refuses the push with ErrCapacityExceeded and keeps the buffer contents intact.
	RejectNew
)

var _ RingBufferOption = OverflowPolicy(0)

func (p OverflowPolicy) Configure(c *RingBufferConfig) { c.Overflow = p }

var _ interface {
	Len
	Values[any]
	Containable[any]
	SliceConvertable[any]
} = (*RingBuffer[any])(nil)

// PushBack appends a value at the back of the buffer.
func (rb *RingBuffer[T]) PushBack(v T) error {
	if err := rb.makeRoom(rb.PopFront); err != nil {
		return err
	}
	rb.grow()
	rb.buf[rb.index(rb.size)] = v
	rb.size++
	return nil
}

// PushFront prepends a value at the front of the buffer.
func (rb *RingBuffer[T]) PushFront(v T) error {
	if err := rb.makeRoom(rb.PopBack); err != nil {
		return err
	}
	rb.grow()
	rb.head = rb.index(-1)
	rb.buf[rb.head] = v
	rb.size++
	return nil
}

func (rb *RingBuffer[T]) makeRoom(evict func() (T, bool)) error {
	if !rb.IsFull() {
		return nil
	}
	if rb.overflow == RejectNew {
		return ErrCapacityExceeded.F("ring buffer already holds %d values", rb.capacity)
	}
	evict()
	return nil
}

// PopFront removes and returns the value at the front of the buffer.
func (rb *RingBuffer[T]) PopFront() (T, bool) {
	var zero T
	if rb.size == 0 {
		return zero, false
	}
	v := rb.buf[rb.head]
	rb.buf[rb.head] = zero
	rb.head = rb.index(1)
	rb.size--
	return v, true
}

// PopBack removes and returns the value at the back of the buffer.
func (rb *RingBuffer[T]) PopBack() (T, bool) {
	var zero T
	if rb.size == 0 {
		return zero, false
	}
	i := rb.index(rb.size - 1)
	v := rb.buf[i]
	rb.buf[i] = zero
	rb.size--
	return v, true
}

// Front returns the value at the front of the buffer without removing it.
func (rb *RingBuffer[T]) Front() (T, bool) {
	if rb.size == 0 {
		var zero T
		return zero, false
	}
	return rb.buf[rb.head], true
}

// Back returns the value at the back of the buffer without removing it.
func (rb *RingBuffer[T]) Back() (T, bool) {
	if rb.size == 0 {
		var zero T
		return zero, false
	}
	return rb.buf[rb.index(rb.size-1)], true
}

func (rb *RingBuffer[T]) Len() int {
	return rb.size
}

// Cap returns the configured capacity, or zero when the buffer is unbounded.
func (rb *RingBuffer[T]) Cap() int {
	return rb.capacity
}

func (rb *RingBuffer[T]) IsFull() bool {
	return rb.capacity != 0 && rb.capacity <= rb.size
}

// Values yields the buffered values from front to back.
// Each call starts a fresh traversal.
func (rb *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < rb.size; i++ {
			if !yield(rb.buf[rb.index(i)]) {
				return
			}
		}
	}
}

// ToSlice returns the buffered values from front to back as a new slice.
func (rb *RingBuffer[T]) ToSlice() []T {
	vs := make([]T, 0, rb.size)
	for i := 0; i < rb.size; i++ {
		vs = append(vs, rb.buf[rb.index(i)])
	}
	return vs
}

func (rb *RingBuffer[T]) Contains(v T) bool {
	return rb.ContainsFunc(func(got T) bool {
		return reflectkit.Equal(got, v)
	})
}

func (rb *RingBuffer[T]) ContainsFunc(match func(v T) bool) bool {
	for i := 0; i < rb.size; i++ {
		if match(rb.buf[rb.index(i)]) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the buffer
// with the same contents, capacity and overflow policy.
func (rb *RingBuffer[T]) Clone() *RingBuffer[T] {
	clone := &RingBuffer[T]{
		buf:      make([]T, rb.size),
		size:     rb.size,
		capacity: rb.capacity,
		overflow: rb.overflow,
	}
	for i := 0; i < rb.size; i++ {
		clone.buf[i] = rb.buf[rb.index(i)]
	}
	return clone
}

// Equal reports whether both buffers hold equal values in the same front to back order.
// Capacity and overflow policy are not part of the comparison.
func (rb *RingBuffer[T]) Equal(oth *RingBuffer[T]) bool {
	return rb.EqualFunc(oth, func(a, b T) bool {
		return reflectkit.Equal(a, b)
	})
}

func (rb *RingBuffer[T]) EqualFunc(oth *RingBuffer[T], eq func(a, b T) bool) bool {
	if rb == nil || oth == nil {
		return rb == oth
	}
	if rb.size != oth.size {
		return false
	}
	for i := 0; i < rb.size; i++ {
		if !eq(rb.buf[rb.index(i)], oth.buf[oth.index(i)]) {
			return false
		}
	}
	return true
}

// Is reports whether both references point to the same ring buffer.
func (rb *RingBuffer[T]) Is(oth *RingBuffer[T]) bool {
	return rb == oth
}

func (rb *RingBuffer[T]) grow() {
	if rb.size < len(rb.buf) {
		return
	}
	n := len(rb.buf) * 2
	if n == 0 {
		n = 8
	}
	if rb.capacity != 0 && rb.capacity < n {
		n = rb.capacity
	}
	buf := make([]T, n)
	for i := 0; i < rb.size; i++ {
		buf[i] = rb.buf[rb.index(i)]
	}
	rb.buf = buf
	rb.head = 0
}

func (rb *RingBuffer[T]) index(i int) int {
	n := len(rb.buf)
	return ((rb.head+i)%n + n) % n
}
