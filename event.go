package maskedit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEvent is returned for event kinds the editor does not handle.
var ErrUnknownEvent = errors.New("maskedit: unknown event")

// EventKind enumerates the input events an Editor accepts.
type EventKind int

const (
	EventPress EventKind = iota + 1
	EventMove
	EventRelease
	EventClick
	EventDoubleClick
	EventModifierDown
	EventModifierUp
	EventUndo
	EventRedo
	EventToolBrush
	EventToolSelection
)

var eventNames = map[EventKind]string{
	EventPress:         "press",
	EventMove:          "move",
	EventRelease:       "release",
	EventClick:         "click",
	EventDoubleClick:   "double-click",
	EventModifierDown:  "modifier-down",
	EventModifierUp:    "modifier-up",
	EventUndo:          "undo",
	EventRedo:          "redo",
	EventToolBrush:     "tool-brush",
	EventToolSelection: "tool-selection",
}

// String returns the event name as accepted by ParseEventKind.
func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ParseEventKind returns the kind named s. Matching ignores case.
func ParseEventKind(s string) (EventKind, error) {
	for k, name := range eventNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}

// Event is one input event. Pos is used by pointer events only.
type Event struct {
	Kind EventKind
	Pos  Point
}

// String returns the event in a compact form.
func (ev Event) String() string {
	switch ev.Kind {
	case EventPress, EventMove, EventClick, EventDoubleClick:
		return ev.Kind.String() + ev.Pos.String()
	default:
		return ev.Kind.String()
	}
}

// Handle dispatches ev to the matching Editor method.
func (e *Editor) Handle(ev Event) error {
	switch ev.Kind {
	case EventPress:
		e.PointerDown(ev.Pos)
	case EventMove:
		e.PointerMove(ev.Pos)
	case EventRelease:
		e.PointerUp()
	case EventClick:
		e.Click(ev.Pos)
	case EventDoubleClick:
		e.DoubleClick(ev.Pos)
	case EventModifierDown:
		e.ModifierDown()
	case EventModifierUp:
		e.ModifierUp()
	case EventUndo:
		e.Undo()
	case EventRedo:
		e.Redo()
	case EventToolBrush:
		e.SetTool(ToolBrush)
	case EventToolSelection:
		e.SetTool(ToolSelection)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownEvent, ev.Kind)
	}
	return nil
}
