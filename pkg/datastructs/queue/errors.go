package queue

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	MsgEmptyQueue      = "cannot dequeue an empty queue"
	MsgInvalidCapacity = "queue capacity must be positive"
)

var (
	// ErrEmptyQueue is returned by Dequeue and Peek when the queue holds no items.
	ErrEmptyQueue = errors.New(MsgEmptyQueue)

	// ErrInvalidCapacity is returned when a queue is constructed with capacity <= 0.
	ErrInvalidCapacity = errors.New(MsgInvalidCapacity)
)

// ConfigError reports a queue configuration that failed validation.
// It matches ErrInvalidCapacity and unwraps to the validation error.
type ConfigError struct {
	Name string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("queue %q: %v: %s", e.Name, e.Err, MsgInvalidCapacity)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidCapacity, e.Err}
}
