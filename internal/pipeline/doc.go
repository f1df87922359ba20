// Package pipeline provides the run scaffolding shared by proctools
// commands: a per-invocation run identifier, an exclusive lock so two
// runs cannot interleave writes to the same log and cache locations, and
// preflight checks over the directories a run is about to touch.
package pipeline
