// Package explorer holds the state of one file explorer session: the branch
// of directories being shown, the ids each listing was rendered with, cursor
// positions and bookmarks. It drives the read, render, diff, classify and
// execute cycle for synchronization.
//
// A Session owns its path registry; two sessions never share ids.
package explorer
