package platform

import (
	"io"
	"log/slog"
	"os"

	"github.com/mlotufo/primer/pkg/core"
)

// options holds the internal configuration for the primer service.
type options struct {
	logger      *slog.Logger
	catalog     core.Catalog
	out         io.Writer
	scratchFile string
}

// Option defines a functional option for configuring primer.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		out: os.Stdout,
	}
}

// WithLogger sets the logger for the service and workspace.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCatalog injects a custom lesson catalog.
// Defaults to the built-in catalog.
func WithCatalog(catalog core.Catalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithOutput directs lesson output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithScratchFile overrides the scratch file name used by the file
// lessons. Defaults to the workspace configuration.
func WithScratchFile(name string) Option {
	return func(o *options) {
		o.scratchFile = name
	}
}
