// Package inventory manages a product inventory kept in an xlsx workbook.
//
// Every product is a worksheet whose first row is a fixed header and whose
// following rows are timestamped snapshots of the product. Edits append a new
// row; the newest row is the current state and its name is the sheet title.
package inventory

import (
	"time"

	"go.uber.org/zap"
)

// Options configures a Book.
type Options struct {
	// Logger receives one entry per mutation. If nil, logging is disabled.
	Logger *zap.Logger
	// Now supplies record timestamps. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns options with logging disabled and the wall clock.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Now:    time.Now,
	}
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
