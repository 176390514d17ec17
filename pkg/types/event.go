package types

// EventPhase tells whether an ActionEvent fires before or after the operation
type EventPhase string

const (
	EventPre  EventPhase = "pre"
	EventPost EventPhase = "post"
)

// ActionEvent is emitted around each file system operation
type ActionEvent struct {
	Phase  EventPhase `json:"phase"`
	Action Action     `json:"action"`
}

// From returns the source path of the action, if any
func (e ActionEvent) From() string { return e.Action.From }

// To returns the target path of the action; for trashed deletes this is the
// trash location
func (e ActionEvent) To() string {
	if e.Action.Kind == ActionDelete {
		return e.Action.TrashTo
	}
	return e.Action.To
}
