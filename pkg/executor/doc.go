// Package executor applies classified actions to the file system.
//
// Actions run sequentially and fail independently: a failed action is
// recorded in its ActionResult and the batch continues. After every
// successful move or rename the path registry is rebound and the remaining
// actions are rewritten to target the entity's new location.
package executor
