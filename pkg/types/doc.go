// Package types defines the core data structures shared by the explorer
// components: directory entries, raw differences between a listing and the
// file system, classified actions and their execution results.
package types
