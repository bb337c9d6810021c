package document

const maxHistory = 100

// History is the document's undo/redo stack. Push executes the command;
// undone commands move to the redo stack, which is dropped on the next Push.
type History struct {
	undo []Command
	redo []Command
}

func NewHistory() *History { return &History{} }

func (h *History) Push(cmd Command) {
	cmd.Do()
	h.undo = append(h.undo, cmd)
	if len(h.undo) > maxHistory {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len is the number of entries available for undo.
func (h *History) Len() int { return len(h.undo) }

func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	cmd.Undo()
	h.redo = append(h.redo, cmd)
	return true
}

func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	cmd.Do()
	h.undo = append(h.undo, cmd)
	return true
}
