package queue

import "go.uber.org/zap"

// Option configures a Ring at construction time.
type Option[T any] func(*Ring[T])

// WithDefault sets the value vacant slots render as.
// Without it, vacant slots render as the empty string.
func WithDefault[T any](v T) Option[T] {
	return func(r *Ring[T]) {
		r.fill = v
		r.hasFill = true
	}
}

// WithName tags log entries emitted by the queue.
func WithName[T any](name string) Option[T] {
	return func(r *Ring[T]) {
		r.name = name
	}
}

// WithLogger attaches a logger for rejected enqueues and underflows.
// A nil logger is ignored.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(r *Ring[T]) {
		if l != nil {
			r.logger = l
		}
	}
}
