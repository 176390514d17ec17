package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ActionKind tags the variant of an Action
type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionDelete ActionKind = "delete"
	ActionCopy   ActionKind = "copy"
	ActionMove   ActionKind = "move"
	ActionRename ActionKind = "rename"
)

// Verb returns the uppercase verb used in confirmation reports
func (k ActionKind) Verb() string {
	return strings.ToUpper(string(k))
}

// Relocates reports whether the kind moves an entity away from From
func (k ActionKind) Relocates() bool {
	return k == ActionMove || k == ActionRename
}

// Action is a classified, directly executable file system operation.
//
//	Create{To}  Delete{From, TrashTo}  Copy{From, To}  Move{From, To}  Rename{From, To}
//
// A Create target ending in a path separator denotes a directory. An empty
// TrashTo on a Delete means permanent removal.
type Action struct {
	Kind    ActionKind `json:"action" yaml:"action"`
	From    string     `json:"from,omitempty" yaml:"from,omitempty"`
	To      string     `json:"to,omitempty" yaml:"to,omitempty"`
	TrashTo string     `json:"trash_to,omitempty" yaml:"trash_to,omitempty"`
}

// Create returns a create action for to
func Create(to string) Action { return Action{Kind: ActionCreate, To: to} }

// Delete returns a delete action; an empty trashTo means permanent delete
func Delete(from, trashTo string) Action {
	return Action{Kind: ActionDelete, From: from, TrashTo: trashTo}
}

// Copy returns a copy action
func Copy(from, to string) Action { return Action{Kind: ActionCopy, From: from, To: to} }

// Move returns a move action
func Move(from, to string) Action { return Action{Kind: ActionMove, From: from, To: to} }

// Rename returns a rename action
func Rename(from, to string) Action { return Action{Kind: ActionRename, From: from, To: to} }

// IsPermanent reports whether a delete bypasses the trash
func (a Action) IsPermanent() bool {
	return a.Kind == ActionDelete && a.TrashTo == ""
}

// CreatesDir reports whether a create action targets a directory
func (a Action) CreatesDir() bool {
	return a.Kind == ActionCreate && IsDirPath(a.To)
}

// SourceDir is the directory an action is grouped under in reports
func (a Action) SourceDir() string {
	if a.From != "" {
		return filepath.Dir(a.From)
	}
	return filepath.Dir(strings.TrimRight(a.To, "/"+string(filepath.Separator)))
}

// Description returns a human-readable, single-line description
func (a Action) Description() string {
	switch a.Kind {
	case ActionCreate:
		return fmt.Sprintf("Create %s", a.To)
	case ActionDelete:
		if a.IsPermanent() {
			return fmt.Sprintf("Delete %s permanently", a.From)
		}
		return fmt.Sprintf("Delete %s to trash", a.From)
	default:
		verb := string(a.Kind)
		return fmt.Sprintf("%s%s %s to %s", strings.ToUpper(verb[:1]), verb[1:], a.From, a.To)
	}
}

// IsDirPath reports whether path carries the trailing separator that marks
// a directory in listings
func IsDirPath(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator))
}
