package primer

import (
	"io"
	"log/slog"

	"github.com/mlotufo/primer/internal/platform"
	"github.com/mlotufo/primer/pkg/core"
)

// Application identity.
const (
	Name    = "primer"
	Version = "1.0.0"
)

// --- Configuration ---

// Option defines a functional option for configuring primer.
type Option = platform.Option

// WithLogger sets the logger for the service and workspace.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithCatalog injects a custom lesson catalog.
func WithCatalog(catalog core.Catalog) Option {
	return platform.WithCatalog(catalog)
}

// WithOutput directs lesson output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return platform.WithOutput(w)
}

// WithScratchFile overrides the scratch file name used by the file lessons.
func WithScratchFile(name string) Option {
	return platform.WithScratchFile(name)
}

// --- Construction ---

// New builds the runner service and its environment rooted at path.
// The path must be an existing directory; its .primer.yml, when
// present, supplies workspace defaults.
func New(path string, opts ...Option) (*core.Service, *core.Env, error) {
	return platform.New(path, opts...)
}
