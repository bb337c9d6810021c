package document

// Command is a single reversible document mutation.
type Command interface {
	Do()
	Undo()
	Text() string
}

// Composite groups commands into one undoable unit. Do runs members in
// order, Undo in reverse, so prerequisite commands (a tileset that must exist
// before the object referencing it) are listed first.
type Composite struct {
	text string
	cmds []Command
}

func NewComposite(text string, cmds ...Command) *Composite {
	return &Composite{text: text, cmds: cmds}
}

func (c *Composite) Add(cmd Command) { c.cmds = append(c.cmds, cmd) }

func (c *Composite) Len() int { return len(c.cmds) }

func (c *Composite) Do() {
	for _, cmd := range c.cmds {
		cmd.Do()
	}
}

func (c *Composite) Undo() {
	for i := len(c.cmds) - 1; i >= 0; i-- {
		c.cmds[i].Undo()
	}
}

func (c *Composite) Text() string { return c.text }
