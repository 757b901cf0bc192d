// Package primer is the Composition Root for the primer application.
//
// It connects the lesson domain (pkg/core, pkg/lessons) with the
// workspace infrastructure (pkg/workspace) behind a small facade.
//
// Philosophy:
//
// primer teaches language fundamentals through runnable lessons. Each
// lesson is a self-contained demonstration writing to an output
// stream; the library keeps lesson content, the run loop, and the
// filesystem surface strictly separated so each can be tested alone.
//
// Features:
//
//   - **Lesson Catalog**: Ordered, glob-addressable collection of demonstrations.
//   - **Runner Service**: Executes lessons in order with per-lesson timing and run IDs.
//   - **Workspace**: YAML-configured directory scoping the transient scratch files.
//   - **Watch Mode**: Re-runs lessons when the workspace changes.
//
// Usage:
//
//	// Wire the runner with functional options
//	svc, env, err := primer.New("./workdir",
//		primer.WithLogger(logger),
//	)
//
//	// Run every lesson
//	report, err := svc.Run(ctx, "**", env)
package primer
