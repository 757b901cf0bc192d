package platform

import (
	"log/slog"

	"github.com/mlotufo/primer/pkg/core"
	"github.com/mlotufo/primer/pkg/lessons"
	"github.com/mlotufo/primer/pkg/workspace"
)

// New wires the lesson catalog, the workspace rooted at path, and the
// runner service together. The path must be an existing directory;
// its .primer.yml, when present, supplies workspace defaults.
func New(path string, opts ...Option) (*core.Service, *core.Env, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	catalog := o.catalog
	if catalog == nil {
		catalog = lessons.Default()
	}

	ws, err := workspace.New(path, logger)
	if err != nil {
		return nil, nil, err
	}

	scratch := o.scratchFile
	if scratch == "" {
		scratch = ws.Config.ScratchFile
	}

	env := &core.Env{
		Out:         o.out,
		Logger:      logger,
		Scratch:     ws,
		ScratchFile: scratch,
	}

	return core.NewService(catalog, logger), env, nil
}
