// Package testutil provides helpers for testing minifiles components.
//
// Key components:
//   - Environment: isolated MINIFILES_* data, config and state directories
//   - Tree: declarative setup of directory trees on disk or in memory
//   - file assertions built on testify
package testutil
