package maskedit

import "bytes"

// DefaultMaxHistorySteps is the number of undoable actions kept.
const DefaultMaxHistorySteps = 15

// ActionKind tags a committed action so undo and redo can resynchronize
// the tool that produced it.
type ActionKind int

const (
	// ActionBrush is a finished brush stroke.
	ActionBrush ActionKind = iota + 1

	// ActionSelection is one lasso vertex.
	ActionSelection

	// ActionClose is a lasso closure and fill.
	ActionClose
)

// String returns the action tag.
func (k ActionKind) String() string {
	switch k {
	case ActionBrush:
		return "brush"
	case ActionSelection:
		return "selection"
	case ActionClose:
		return "close"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of the mask layer pixels.
type Snapshot struct {
	pix []uint8
}

// Pixels returns a copy of the snapshot data.
func (s Snapshot) Pixels() []uint8 {
	return append([]uint8(nil), s.pix...)
}

// Equal reports whether s and o hold the same pixels.
func (s Snapshot) Equal(o Snapshot) bool {
	return bytes.Equal(s.pix, o.pix)
}

func snapshotOf(p *Pixmap) Snapshot {
	return Snapshot{pix: append([]uint8(nil), p.Data()...)}
}

// History is a bounded stack of mask snapshots with one action tag per
// step.
//
// The entry at Index is the displayed state. Entry 0 is the oldest
// retained state and carries no tag, so len(Kinds()) == Index() holds at
// all times. Undone tags move to a redo stack and return on redo; any
// Save clears that stack.
//
// Snapshot restores copy into a destination pixmap, which must have the
// same dimensions as the saved ones.
type History struct {
	max       int
	snapshots []Snapshot
	index     int
	kinds     []ActionKind
	redo      []ActionKind
}

// NewHistory creates a history holding up to maxSteps undoable actions.
// initial is snapshotted as the oldest state. A non-positive maxSteps
// means DefaultMaxHistorySteps.
func NewHistory(maxSteps int, initial *Pixmap) *History {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxHistorySteps
	}
	h := &History{max: maxSteps}
	h.Reset(initial)
	return h
}

// Reset discards all steps and makes initial the only state.
func (h *History) Reset(initial *Pixmap) {
	h.snapshots = append(h.snapshots[:0], snapshotOf(initial))
	h.index = 0
	h.kinds = h.kinds[:0]
	h.redo = h.redo[:0]
}

// Save pushes a snapshot of src tagged with kind. Redo states are
// discarded. When the stack is full the oldest snapshot and the oldest
// tag are evicted.
func (h *History) Save(src *Pixmap, kind ActionKind) {
	h.snapshots = h.snapshots[:h.index+1]
	h.redo = h.redo[:0]
	if len(h.snapshots) > h.max {
		h.snapshots = append(h.snapshots[:0], h.snapshots[1:]...)
		h.kinds = append(h.kinds[:0], h.kinds[1:]...)
	}
	h.snapshots = append(h.snapshots, snapshotOf(src))
	h.index = len(h.snapshots) - 1
	h.kinds = append(h.kinds, kind)
}

// Undo restores the previous snapshot into dst and returns the tag of
// the undone action. ok is false at the oldest retained state, in which
// case nothing changes.
func (h *History) Undo(dst *Pixmap) (kind ActionKind, ok bool) {
	if h.index == 0 {
		return 0, false
	}
	h.index--
	copy(dst.Data(), h.snapshots[h.index].pix)
	kind = h.kinds[len(h.kinds)-1]
	h.kinds = h.kinds[:len(h.kinds)-1]
	h.redo = append(h.redo, kind)
	return kind, true
}

// Redo restores the next snapshot into dst and returns the tag of the
// redone action. ok is false when nothing has been undone since the last
// Save.
func (h *History) Redo(dst *Pixmap) (kind ActionKind, ok bool) {
	if len(h.redo) == 0 {
		return 0, false
	}
	h.index++
	copy(dst.Data(), h.snapshots[h.index].pix)
	kind = h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.kinds = append(h.kinds, kind)
	return kind, true
}

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Index returns the position of the displayed snapshot.
func (h *History) Index() int { return h.index }

// Max returns the number of undoable actions kept.
func (h *History) Max() int { return h.max }

// Kinds returns a copy of the action tags up to the displayed snapshot.
func (h *History) Kinds() []ActionKind {
	return append([]ActionKind(nil), h.kinds...)
}

// PendingRedo returns the tag the next Redo would restore.
func (h *History) PendingRedo() (ActionKind, bool) {
	if len(h.redo) == 0 {
		return 0, false
	}
	return h.redo[len(h.redo)-1], true
}

// RedoDepth returns the number of actions that can be redone.
func (h *History) RedoDepth() int { return len(h.redo) }

// Current returns the displayed snapshot.
func (h *History) Current() Snapshot { return h.snapshots[h.index] }

// At returns the snapshot at position i.
func (h *History) At(i int) Snapshot { return h.snapshots[i] }
