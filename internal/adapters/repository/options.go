package repository

import "time"

const (
	defaultKeyPrefix     = "bizmatch:answers:"
	defaultSweepInterval = time.Minute
)

type options struct {
	ttl           time.Duration
	keyPrefix     string
	sweepInterval time.Duration
	now           func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		keyPrefix:     defaultKeyPrefix,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option applies a configuration option to a Store.
type Option func(*options)

// WithTTL expires sessions that have not been written for ttl. Zero keeps
// sessions until they are deleted.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithKeyPrefix sets the Redis key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.keyPrefix = prefix
		}
	}
}

// WithSweepInterval sets how often the memory store drops expired sessions.
func WithSweepInterval(interval time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.sweepInterval = interval
		}
	}
}

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
