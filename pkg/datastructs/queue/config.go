package queue

import (
	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

// NewRingFromConfig validates cfg and builds a Ring named after cfg.Name.
// Options passed explicitly are applied after the configured ones.
func NewRingFromConfig[T any](cfg settings.Queue, opts ...Option[T]) (*Ring[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Name: cfg.Name, Err: err}
	}

	all := make([]Option[T], 0, len(opts)+1)
	all = append(all, WithName[T](cfg.Name))
	all = append(all, opts...)

	return NewRing(cfg.Capacity, all...)
}
