package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotFound is returned when a lookup or removal target is absent from the container.
	ErrNotFound errorkit.Error = "err-not-found"

	// ErrDuplicateKey is returned on strict-mode insert collisions,
	// and when a Tuple is constructed with a repeated field name.
	ErrDuplicateKey errorkit.Error = "err-duplicate-key"

	// ErrCapacityExceeded is returned when a bounded RingBuffer with the RejectNew
	// overflow policy receives a push while full.
	ErrCapacityExceeded errorkit.Error = "err-capacity-exceeded"

	// ErrIncomparableType is returned when a SortedList has no usable ordering
	// for its element type.
	ErrIncomparableType errorkit.Error = "err-incomparable-type"

	// ErrCycleDetected is returned when a Tree operation would break the single
	// parent rule, or when an operation that requires an acyclic graph meets a cycle.
	ErrCycleDetected errorkit.Error = "err-cycle-detected"
)
