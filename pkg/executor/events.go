package executor

import (
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/rs/zerolog"
)

// EventSink receives an event before each operation is attempted and after
// each one that succeeds
type EventSink interface {
	Emit(event types.ActionEvent)
}

// EventSinkFunc adapts a function to EventSink
type EventSinkFunc func(event types.ActionEvent)

// Emit calls f
func (f EventSinkFunc) Emit(event types.ActionEvent) { f(event) }

// Sinks fans an event out to several sinks in order
type Sinks []EventSink

// Emit forwards event to every non-nil sink
func (s Sinks) Emit(event types.ActionEvent) {
	for _, sink := range s {
		if sink != nil {
			sink.Emit(event)
		}
	}
}

// LogSink writes events to a logger at debug level
type LogSink struct {
	Logger zerolog.Logger
}

// Emit logs the event
func (l LogSink) Emit(event types.ActionEvent) {
	l.Logger.Debug().
		Str("phase", string(event.Phase)).
		Str("action", string(event.Action.Kind)).
		Str("from", event.From()).
		Str("to", event.To()).
		Msg("Action event")
}

// PathUpdater lets collaborators holding paths (open documents, cursors)
// follow entities the executor moved or deleted
type PathUpdater interface {
	PathMoved(from, to string)
	PathDeleted(path string)
}
