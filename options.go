package filediff

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"

	"github.com/input-output-hk/catalyst-forge-libs/filediff/internal/pool"
)

const (
	// DefaultChunkSize is the number of bytes read from each stream per step.
	DefaultChunkSize = pool.SmallBufferSize

	// DefaultConcurrency is the number of pairs ComparePairs checks at once.
	DefaultConcurrency = 4
)

// options holds configuration for a Comparator.
type options struct {
	chunkSize   int
	filesystem  billy.Filesystem
	logger      *slog.Logger
	concurrency int
}

// Option is a functional option for configuring a Comparator.
type Option func(*options)

// WithChunkSize sets how many bytes are read from each stream per step.
// Values below 1 keep the default. The comparison result never depends on it.
func WithChunkSize(n int) Option {
	return func(opts *options) {
		if n >= 1 {
			opts.chunkSize = n
		}
	}
}

// WithFilesystem configures the filesystem that paths are opened from.
// If fs is nil, the native filesystem is used.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(opts *options) {
		if fs != nil {
			opts.filesystem = fs
		}
	}
}

// WithLogger configures the comparator with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithConcurrency limits how many pairs ComparePairs compares at once.
// Values below 1 keep the default.
func WithConcurrency(n int) Option {
	return func(opts *options) {
		if n >= 1 {
			opts.concurrency = n
		}
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *options {
	return &options{
		chunkSize:   DefaultChunkSize,
		filesystem:  NewNativeFS(),
		logger:      nil, // No default logger
		concurrency: DefaultConcurrency,
	}
}

// applyOptions applies the given options to the comparator options.
func applyOptions(o *options, opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}
