// Package paths provides centralized path handling for minifiles.
//
// It resolves the XDG directories used by the explorer (data, config and
// state), the trash location for non-permanent deletes, and the pure path
// helpers shared by the diff, classification and execution stages:
// normalization, parent/child arithmetic and subtree rebasing.
package paths
